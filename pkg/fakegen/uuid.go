package fakegen

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID yields version 4 UUIDs whose 16 random bytes are drawn from the Source.
func UUID() Generator[string] {
	return func(r Source) (string, error) {
		id, err := uuid.NewRandomFromReader(Reader(r))
		if err != nil {
			return "", fmt.Errorf("failed to generate uuid: %w", err)
		}
		return id.String(), nil
	}
}
