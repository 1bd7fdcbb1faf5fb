package ports

import "github.com/chorelabs/chore/internal/core/domain"

// TaskSource loads task registrations from an external definition, keyed by
// the name the definition uses. An entry's Name field, when set, overrides
// the key at registration time.
//
//go:generate go run go.uber.org/mock/mockgen -source=task_source.go -destination=mocks/mock_task_source.go -package=mocks
type TaskSource interface {
	// Load reads task definitions from the given path.
	Load(path string) (map[string]domain.Registration, error)
}
