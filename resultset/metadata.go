package resultset

import (
	"github.com/TW-Brandon/cassandra-jdbc/codec"
)

// Metadata is a read-only reflection over the current row's typed columns.
// The column set is rebuilt on every advance, so counts and types can in
// principle differ row to row; the metadata refers to the column values,
// not a fixed schema.
type Metadata struct {
	rs *ResultSet
}

// ColumnCount is the number of columns in the current row.
func (m *Metadata) ColumnCount() int {
	return len(m.rs.columns)
}

// CatalogName is the cluster name of the owning connection.
func (m *Metadata) CatalogName(index int) (string, error) {
	if _, err := m.rs.column(index); err != nil {
		return "", err
	}
	return m.rs.stmt.ClusterName(), nil
}

// SchemaName is the current keyspace of the owning connection.
func (m *Metadata) SchemaName(index int) (string, error) {
	if _, err := m.rs.column(index); err != nil {
		return "", err
	}
	return m.rs.stmt.Keyspace(), nil
}

// TableName is not supported; rows do not carry their table of origin.
func (m *Metadata) TableName(int) (string, error) {
	return "", ErrNotSupported
}

func (m *Metadata) ColumnName(index int) (string, error) {
	column, err := m.rs.column(index)
	if err != nil {
		return "", err
	}
	return column.name, nil
}

func (m *Metadata) ColumnLabel(index int) (string, error) {
	return m.ColumnName(index)
}

// ColumnType is the java.sql.Types code of the value codec.
func (m *Metadata) ColumnType(index int) (int, error) {
	column, err := m.rs.column(index)
	if err != nil {
		return 0, err
	}
	return column.valueCodec.JDBCType(), nil
}

// ColumnTypeName is the database-specific type name: the type tag.
func (m *Metadata) ColumnTypeName(index int) (string, error) {
	column, err := m.rs.column(index)
	if err != nil {
		return "", err
	}
	return column.typeTag, nil
}

// ColumnClassName names the native variant getters coerce from.
func (m *Metadata) ColumnClassName(index int) (string, error) {
	column, err := m.rs.column(index)
	if err != nil {
		return "", err
	}
	return column.valueCodec.Kind().String(), nil
}

// ColumnDisplaySize is the length of the value's textual rendering.
func (m *Metadata) ColumnDisplaySize(index int) (int, error) {
	column, err := m.rs.column(index)
	if err != nil {
		return 0, err
	}
	return len(column.ValueString()), nil
}

func (m *Metadata) Precision(index int) (int, error) {
	column, err := m.rs.column(index)
	if err != nil {
		return 0, err
	}
	return column.valueCodec.Precision(column.value), nil
}

func (m *Metadata) Scale(index int) (int, error) {
	column, err := m.rs.column(index)
	if err != nil {
		return 0, err
	}
	return column.valueCodec.Scale(column.value), nil
}

// Nullable always reports nullable: absence is the null representation.
func (m *Metadata) Nullable(index int) (int, error) {
	if _, err := m.rs.column(index); err != nil {
		return 0, err
	}
	return ColumnNullable, nil
}

// AutoIncrement is true only for counter columns.
func (m *Metadata) AutoIncrement(index int) (bool, error) {
	column, err := m.rs.column(index)
	if err != nil {
		return false, err
	}
	return column.valueCodec == codec.Counter, nil
}

func (m *Metadata) CaseSensitive(index int) (bool, error) {
	column, err := m.rs.column(index)
	if err != nil {
		return false, err
	}
	return column.valueCodec.CaseSensitive(), nil
}

func (m *Metadata) Currency(index int) (bool, error) {
	column, err := m.rs.column(index)
	if err != nil {
		return false, err
	}
	return column.valueCodec.Currency(), nil
}

func (m *Metadata) Signed(index int) (bool, error) {
	column, err := m.rs.column(index)
	if err != nil {
		return false, err
	}
	return column.valueCodec.Signed(), nil
}

func (m *Metadata) Searchable(index int) (bool, error) {
	if _, err := m.rs.column(index); err != nil {
		return false, err
	}
	return false, nil
}

// Writable is true for every reachable (positive) index; only the
// never-reachable index 0 reads as read-only.
func (m *Metadata) Writable(index int) (bool, error) {
	if _, err := m.rs.column(index); err != nil {
		return false, err
	}
	return index > 0, nil
}

func (m *Metadata) DefinitelyWritable(index int) (bool, error) {
	return m.Writable(index)
}

func (m *Metadata) ReadOnly(index int) (bool, error) {
	if _, err := m.rs.column(index); err != nil {
		return false, err
	}
	return index == 0, nil
}
