package entity

// Sequence is a named atomic counter backing UHID and bill-number
// generation. Rows are locked with SELECT ... FOR UPDATE inside the
// caller's transaction; names embed the scope and day, e.g.
// "uhid:20260831" or "bill:opd:20260831".
type Sequence struct {
	Name  string `gorm:"type:varchar(100);primaryKey" json:"name"`
	Value int64  `gorm:"not null;default:0" json:"value"`
}

func (Sequence) TableName() string {
	return "sequences"
}
