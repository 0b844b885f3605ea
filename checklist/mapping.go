package checklist

import "github.com/tkarwowski/regcheck"

// DefaultMapping associates the document types the reviewer recognizes
// with their official ADGM checklist sources. Direct document URLs are
// used as-is; site roots are crawled for checklist-like documents.
func DefaultMapping() regcheck.Mapping {
	return regcheck.Mapping{
		"Employment Contract": "https://www.adgm.com/documents/office-of-data-protection/templates/adgm-standard-employment-contract.docx",
		"Articles of Association": "https://www.adgm.com/registration-authority/registration-and-incorporation",
		"Memorandum of Association": "https://www.adgm.com/registration-authority/registration-and-incorporation",
		"Board Resolution": "https://www.adgm.com/setting-up",
		"Shareholder Resolution": "https://www.adgm.com/setting-up",
		"Ultimate Beneficial Owner Declaration": "https://www.adgm.com/registration-authority/registration-and-incorporation",
		"Commercial Licence Application": "https://www.adgm.com/operating-in-adgm/obtained-licence",
	}
}
