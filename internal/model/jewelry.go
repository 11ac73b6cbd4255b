package model

// Subtype is the material category of a jewelry item. The marketplace stores
// the three categories in separate tables, so a record identifies itself by
// which subtype id is non-null.
type Subtype string

const (
	SubtypeSilver      Subtype = "Silver"
	SubtypeGold        Subtype = "Gold"
	SubtypeGoldDiamond Subtype = "GoldDiamond"
)

func (s Subtype) Valid() bool {
	switch s {
	case SubtypeSilver, SubtypeGold, SubtypeGoldDiamond:
		return true
	}
	return false
}

// JewelryItem is one listing regardless of material. Exactly one of the
// subtype ids is set per record; Subtype is stamped once at the decode or
// aggregation boundary and trusted everywhere downstream.
type JewelryItem struct {
	Subtype       Subtype `json:"subtype"`
	SilverID      *int    `json:"jewelrySilverId,omitempty"`
	GoldID        *int    `json:"jewelryGoldId,omitempty"`
	GoldDiamondID *int    `json:"jewelryGolddiaId,omitempty"`

	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Collection  string  `json:"collection,omitempty"`
	Materials   string  `json:"materials"`
	Weight      float64 `json:"weight"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"jewelryImg"`
	Shipment    string  `json:"shipment,omitempty"`
	Status      string  `json:"status,omitempty"`

	// subtype specific attributes
	Purity  string `json:"purity,omitempty"`
	GoldAge string `json:"goldAge,omitempty"`
	Clarity string `json:"clarity,omitempty"`
	Carat   string `json:"carat,omitempty"`
}

// TagSubtype derives the subtype from whichever id is present. This is the
// only place the null-check derivation is allowed to live.
func (j *JewelryItem) TagSubtype() {
	switch {
	case j.SilverID != nil:
		j.Subtype = SubtypeSilver
	case j.GoldID != nil:
		j.Subtype = SubtypeGold
	case j.GoldDiamondID != nil:
		j.Subtype = SubtypeGoldDiamond
	}
}

// ID returns the subtype-specific identifier, 0 when the record carries none.
func (j JewelryItem) ID() int {
	switch {
	case j.SilverID != nil:
		return *j.SilverID
	case j.GoldID != nil:
		return *j.GoldID
	case j.GoldDiamondID != nil:
		return *j.GoldDiamondID
	}
	return 0
}
