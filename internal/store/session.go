package store

import "context"

// IsLoggedIn reports the persisted login flag. Absent means logged out.
func (s *Store) IsLoggedIn(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var loggedIn bool
	if _, err := s.getJSON(loggedInKey, &loggedIn); err != nil {
		return false, err
	}
	return loggedIn, nil
}

// SetLoggedIn persists the login flag.
func (s *Store) SetLoggedIn(ctx context.Context, loggedIn bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.setJSON(loggedInKey, loggedIn)
}
