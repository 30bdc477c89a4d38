package catalog

// RecordModel is the GORM mapping for the catalog_records table, used when
// the catalog is sourced from a database instead of a JSON export.
type RecordModel struct {
	ISBN                string `gorm:"column:isbn;primaryKey"`
	HasJacket           bool   `gorm:"column:has_jacket"`
	BookDescription     string `gorm:"column:book_description"`
	Customer            string `gorm:"column:customer"`
	TrimHeight          string `gorm:"column:trim_height"`
	TrimWidth           string `gorm:"column:trim_width"`
	SpineSize           string `gorm:"column:spine_size"`
	CoverMediaTreatment string `gorm:"column:cover_media_treatment"`
	BindingType         string `gorm:"column:binding_type"`
	Pagination          string `gorm:"column:pagination"`
	StockDescription    string `gorm:"column:stock_description"`
	WeightGSM           string `gorm:"column:weight_gsm"`
	PDFUrl              string `gorm:"column:pdf_url"`
}

// TableName overrides the GORM table name.
func (RecordModel) TableName() string {
	return "catalog_records"
}

// ToRecord converts the database row to the immutable catalog record.
func (m RecordModel) ToRecord() Record {
	return Record{
		ISBN:                m.ISBN,
		HasJacket:           m.HasJacket,
		BookDescription:     m.BookDescription,
		Customer:            m.Customer,
		TrimHeight:          Scalar(m.TrimHeight),
		TrimWidth:           Scalar(m.TrimWidth),
		SpineSize:           Scalar(m.SpineSize),
		CoverMediaTreatment: m.CoverMediaTreatment,
		BindingType:         m.BindingType,
		Pagination:          Scalar(m.Pagination),
		StockDescription:    m.StockDescription,
		WeightGSM:           Scalar(m.WeightGSM),
		PDFUrl:              m.PDFUrl,
	}
}
