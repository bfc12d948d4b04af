package core

import "encoding/json"

// Product is one record of the source catalog export. The same type carries
// the normalized record: ParsedDescription and the derived OriginalData
// fields are empty until the normalize stage fills them.
type Product struct {
	Code             string   `json:"code"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	DescriptionShort string   `json:"description_short,omitempty"`
	SEODescription   string   `json:"seo_description,omitempty"`
	SEOTitle         string   `json:"seo_title,omitempty"`
	Handle           string   `json:"handle"`
	Price            Amount   `json:"price,omitempty"`
	CompareAtPrice   Amount   `json:"compare_at_price,omitempty"`
	Weight           float64  `json:"weight"`
	Inventory        int      `json:"inventory"`
	ImageURL         string   `json:"image_url"`
	ImageAlt         string   `json:"image_alt"`
	CategoryIDs      []string `json:"category_ids,omitzero"`
	OptionIDs        []string `json:"option_ids,omitzero"`
	Vendor           string   `json:"vendor"`
	Barcode          string   `json:"barcode"`
	Manufacturer     string   `json:"manufacturer,omitempty"`

	OriginalData *OriginalData `json:"original_data,omitempty"`

	// ParsedDescription is the plain text (or Markdown) form of Description.
	ParsedDescription string `json:"parsed_description"`
}

// HasOptions reports whether the product declares variant options.
func (p Product) HasOptions() bool {
	return len(p.OptionIDs) > 0
}

// OriginalData holds the rich-text fields of the source platform together
// with the structured values extracted from them.
type OriginalData struct {
	Features     string `json:"features,omitempty"`
	TechSpecs    string `json:"tech_specs,omitempty"`
	ExtendedInfo string `json:"extended_info,omitempty"`
	Keywords     string `json:"keywords,omitempty"`

	TechSpecsLinks   []string `json:"tech_specs_links,omitzero"`
	TechSpecsList    []string `json:"tech_specs_list,omitzero"`
	TechSpecsDivs    []string `json:"tech_specs_divs,omitzero"`
	FeaturesText     string   `json:"features_text,omitempty"`
	ExtendedInfoText string   `json:"extended_info_text,omitempty"`
}

// IsEmpty reports whether no source or derived field is set.
func (o *OriginalData) IsEmpty() bool {
	if o == nil {
		return true
	}
	return o.Features == "" && o.TechSpecs == "" && o.ExtendedInfo == "" && o.Keywords == "" &&
		o.TechSpecsLinks == nil && o.TechSpecsList == nil && o.TechSpecsDivs == nil &&
		o.FeaturesText == "" && o.ExtendedInfoText == ""
}

// Amount is a price as it appeared in the source document. Exports render
// numbers and strings alike without reformatting, so the raw JSON token is
// kept instead of a float. The zero Amount means the key was absent; an
// explicit JSON null is kept as the token "null".
type Amount string

// NullAmount is the Amount of an explicit JSON null.
const NullAmount Amount = "null"

// UnmarshalJSON stores the token text.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount(data)
	return nil
}

// MarshalJSON writes the original token back. Values that are not a valid
// JSON token are written as strings.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a == "" || a == NullAmount {
		return []byte("null"), nil
	}
	if json.Valid([]byte(a)) {
		return []byte(a), nil
	}
	return json.Marshal(string(a))
}

// IsSet reports whether the source document carried the key, null included.
func (a Amount) IsSet() bool {
	return a != ""
}

// String returns the amount text without JSON quoting. Absent and null
// amounts are empty.
func (a Amount) String() string {
	if a == NullAmount {
		return ""
	}
	if len(a) >= 2 && a[0] == '"' {
		var s string
		if err := json.Unmarshal([]byte(a), &s); err == nil {
			return s
		}
	}
	return string(a)
}
