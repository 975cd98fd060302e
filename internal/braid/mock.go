package braid

import (
	"github.com/stretchr/testify/mock"

	"github.com/bjulian5/braid/internal/git"
)

// MockGitClient is a testify mock of GitClient for tests that need a
// repository without creating one.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = (*MockGitClient)(nil)

func (m *MockGitClient) GitRoot() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockGitClient) GetCurrentBranch() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) ListBranches() ([]string, error) {
	args := m.Called()
	return toStrings(args.Get(0)), args.Error(1)
}

func (m *MockGitClient) BranchExists(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}

func (m *MockGitClient) ListRemotes() ([]string, error) {
	args := m.Called()
	return toStrings(args.Get(0)), args.Error(1)
}

func (m *MockGitClient) ListTags() ([]string, error) {
	args := m.Called()
	return toStrings(args.Get(0)), args.Error(1)
}

func (m *MockGitClient) HasUncommittedChanges() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockGitClient) LogAll() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) Merge(branch string, noFF bool) (*git.MergeResult, error) {
	args := m.Called(branch, noFF)
	if result := args.Get(0); result != nil {
		return result.(*git.MergeResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGitClient) Status() (*git.StatusSummary, error) {
	args := m.Called()
	if summary := args.Get(0); summary != nil {
		return summary.(*git.StatusSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGitClient) CheckoutBranch(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockGitClient) DeleteBranch(name string, force bool) error {
	args := m.Called(name, force)
	return args.Error(0)
}

func toStrings(v any) []string {
	if v == nil {
		return nil
	}
	return v.([]string)
}
