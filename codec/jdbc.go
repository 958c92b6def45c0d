package codec

// java.sql.Types codes reported through the metadata view.
const (
	TypeBigInt    = -5
	TypeBinary    = -2
	TypeRowID     = -8
	TypeNumeric   = 2
	TypeDecimal   = 3
	TypeInteger   = 4
	TypeFloat     = 6
	TypeDouble    = 8
	TypeVarchar   = 12
	TypeBoolean   = 16
	TypeDate      = 91
	TypeTime      = 92
	TypeTimestamp = 93
	TypeOther     = 1111
)
