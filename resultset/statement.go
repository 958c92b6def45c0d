package resultset

// JDBC result-set constants, kept at their java.sql values.
const (
	TypeForwardOnly       = 1003
	TypeScrollInsensitive = 1004
	TypeScrollSensitive   = 1005

	ConcurReadOnly  = 1007
	ConcurUpdatable = 1008

	HoldCursorsOverCommit = 1
	CloseCursorsAtCommit  = 2

	FetchForward = 1000
	FetchReverse = 1001
	FetchUnknown = 1002

	ColumnNoNulls         = 0
	ColumnNullable        = 1
	ColumnNullableUnknown = 2
)

// Statement is the owning statement/connection collaborator.  The result
// set reads this configuration once at construction; only fetch direction
// and fetch size stay mutable afterwards, through the result set's own
// setters.
type Statement interface {
	ResultSetType() int
	ResultSetConcurrency() int
	ResultSetHoldability() int
	FetchDirection() int
	FetchSize() int

	// ClusterName and Keyspace come from the connection context and back
	// the metadata view's catalog and schema names.
	ClusterName() string
	Keyspace() string
}

// StatementConfig is a plain-value Statement.
type StatementConfig struct {
	Type            int
	Concurrency     int
	Holdability     int
	Direction       int
	Size            int
	Cluster         string
	CurrentKeyspace string
}

var _ Statement = (*StatementConfig)(nil)

func (s *StatementConfig) ResultSetType() int        { return s.Type }
func (s *StatementConfig) ResultSetConcurrency() int { return s.Concurrency }
func (s *StatementConfig) ResultSetHoldability() int { return s.Holdability }
func (s *StatementConfig) FetchDirection() int       { return s.Direction }
func (s *StatementConfig) FetchSize() int            { return s.Size }
func (s *StatementConfig) ClusterName() string       { return s.Cluster }
func (s *StatementConfig) Keyspace() string          { return s.CurrentKeyspace }

// defaultStatement mirrors the defaults a statement-less result set
// assumes: forward-only, read-only, cursors held over commit.
func defaultStatement() Statement {
	return &StatementConfig{
		Type:        TypeForwardOnly,
		Concurrency: ConcurReadOnly,
		Holdability: HoldCursorsOverCommit,
		Direction:   FetchForward,
	}
}
