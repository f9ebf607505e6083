// test/mock/neo4j.go
package mock

import (
	"errors"
	"net/url"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/mock"
)

// MockDriver is a mock implementation of neo4j.Driver
type MockDriver struct {
	mock.Mock
}

var _ neo4j.Driver = &MockDriver{}

func (m *MockDriver) NewSession(config neo4j.SessionConfig) neo4j.Session {
	args := m.Called(config)
	return args.Get(0).(neo4j.Session)
}

func (m *MockDriver) VerifyConnectivity() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockDriver) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockDriver) Target() url.URL {
	args := m.Called()
	return args.Get(0).(url.URL)
}

func (m *MockDriver) IsEncrypted() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockSession is a mock implementation of neo4j.Session. When a
// ReadTransaction or WriteTransaction expectation returns a neo4j.Transaction,
// the work function runs against it and its result is returned.
type MockSession struct {
	mock.Mock
}

var _ neo4j.Session = &MockSession{}

func (m *MockSession) Run(cypher string, params map[string]any, configurers ...func(*neo4j.TransactionConfig)) (neo4j.Result, error) {
	args := m.Called(cypher, params)
	result, _ := args.Get(0).(neo4j.Result)
	return result, args.Error(1)
}

func (m *MockSession) ReadTransaction(work neo4j.TransactionWork, configurers ...func(*neo4j.TransactionConfig)) (any, error) {
	return m.runWork("ReadTransaction", work)
}

func (m *MockSession) WriteTransaction(work neo4j.TransactionWork, configurers ...func(*neo4j.TransactionConfig)) (any, error) {
	return m.runWork("WriteTransaction", work)
}

func (m *MockSession) runWork(method string, work neo4j.TransactionWork) (any, error) {
	args := m.MethodCalled(method)
	if tx, ok := args.Get(0).(neo4j.Transaction); ok {
		return work(tx)
	}
	return args.Get(0), args.Error(1)
}

func (m *MockSession) BeginTransaction(configurers ...func(*neo4j.TransactionConfig)) (neo4j.Transaction, error) {
	args := m.Called()
	tx, _ := args.Get(0).(neo4j.Transaction)
	return tx, args.Error(1)
}

func (m *MockSession) LastBookmark() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSession) LastBookmarks() neo4j.Bookmarks {
	args := m.Called()
	return args.Get(0).(neo4j.Bookmarks)
}

func (m *MockSession) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockTransaction is a mock implementation of neo4j.Transaction
type MockTransaction struct {
	mock.Mock
}

var _ neo4j.Transaction = &MockTransaction{}

func (m *MockTransaction) Run(cypher string, params map[string]any) (neo4j.Result, error) {
	args := m.Called(cypher, params)
	result, _ := args.Get(0).(neo4j.Result)
	return result, args.Error(1)
}

func (m *MockTransaction) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTransaction) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTransaction) Close() error {
	args := m.Called()
	return args.Error(0)
}

// RecordsResult is a neo4j.Result over a fixed set of records.
type RecordsResult struct {
	Records []*neo4j.Record
	Error   error
	current *neo4j.Record
	next    int
}

var _ neo4j.Result = &RecordsResult{}

// NodeResult builds a single-column result with one node per record.
func NodeResult(props ...map[string]any) *RecordsResult {
	records := make([]*neo4j.Record, len(props))
	for i, p := range props {
		records[i] = &neo4j.Record{Keys: []string{"n"}, Values: []any{neo4j.Node{Props: p}}}
	}
	return &RecordsResult{Records: records}
}

func (r *RecordsResult) Keys() ([]string, error) {
	if len(r.Records) == 0 {
		return nil, r.Error
	}
	return r.Records[0].Keys, r.Error
}

func (r *RecordsResult) Next() bool {
	if r.next >= len(r.Records) {
		r.current = nil
		return false
	}
	r.current = r.Records[r.next]
	r.next++
	return true
}

func (r *RecordsResult) NextRecord(record **neo4j.Record) bool {
	ok := r.Next()
	if record != nil {
		*record = r.current
	}
	return ok
}

func (r *RecordsResult) PeekRecord(record **neo4j.Record) bool {
	if r.next >= len(r.Records) {
		return false
	}
	if record != nil {
		*record = r.Records[r.next]
	}
	return true
}

func (r *RecordsResult) Err() error {
	return r.Error
}

func (r *RecordsResult) Record() *neo4j.Record {
	return r.current
}

func (r *RecordsResult) Collect() ([]*neo4j.Record, error) {
	rest := r.Records[r.next:]
	r.next = len(r.Records)
	return rest, r.Error
}

func (r *RecordsResult) Single() (*neo4j.Record, error) {
	if len(r.Records)-r.next != 1 {
		return nil, errors.New("result does not hold exactly one record")
	}
	r.Next()
	return r.current, r.Error
}

func (r *RecordsResult) Consume() (neo4j.ResultSummary, error) {
	r.next = len(r.Records)
	return nil, r.Error
}
