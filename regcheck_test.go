package regcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tkarwowski/regcheck"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := regcheck.Errorf(regcheck.ENOTFOUND, "checklist for %q not found", "test")

	assert.Equal(t, regcheck.ENOTFOUND, regcheck.ErrorCode(err))
	assert.Equal(t, "checklist for \"test\" not found", regcheck.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, regcheck.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, regcheck.ErrorMessage(nil))
}

func TestClassification_Type(t *testing.T) {
	t.Parallel()

	t.Run("matched returns label", func(t *testing.T) {
		t.Parallel()
		cls := regcheck.Classification{Label: "Employment Contract", Matched: true, Raw: "employment contracts"}
		assert.Equal(t, regcheck.DocumentType("Employment Contract"), cls.Type())
	})

	t.Run("unmatched returns raw output", func(t *testing.T) {
		t.Parallel()
		cls := regcheck.Classification{Matched: false, Raw: "Some Novel Type"}
		assert.Equal(t, regcheck.DocumentType("Some Novel Type"), cls.Type())
	})
}
