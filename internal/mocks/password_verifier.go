package mocks

// MockPasswordVerifier implements auth.PasswordVerifier for testing
type MockPasswordVerifier struct {
	// CompareFn allows test cases to mock the Compare behavior
	CompareFn func(hashedKey, key string) error

	// Err is returned when CompareFn is nil
	Err error
}

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedKey, key string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedKey, key)
	}
	return m.Err
}
