package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/maryanafarm/storefront/internal/models"
)

// fileCartStore keeps one JSON file per cart id. It is the local analog of a
// browser cookie slot, meant for development and single-host deployments.
type fileCartStore struct {
	dir string
}

func NewFileCartStore(dir string) (CartStore, error) {

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cart store directory %s: %w", dir, err)
	}

	return &fileCartStore{dir: dir}, nil
}

func (s *fileCartStore) path(cartID string) string {
	// cart ids are uuids we issued; Base guards against anything path-like
	return filepath.Join(s.dir, filepath.Base(cartID)+".json")
}

func (s *fileCartStore) Load(ctx context.Context, cartID string) ([]models.CartItem, bool, error) {

	data, err := os.ReadFile(s.path(cartID))
	if err != nil {

		if os.IsNotExist(err) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to read cart file for %s: %w", cartID, err)
	}

	var items []models.CartItem

	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("Discarding malformed cart file",
			slog.String("cart_id", cartID),
			slog.String("error", err.Error()),
		)

		return nil, false, nil
	}

	return items, true, nil
}

func (s *fileCartStore) Save(ctx context.Context, cartID string, items []models.CartItem) error {

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart %s: %w", cartID, err)
	}

	if err := os.WriteFile(s.path(cartID), data, 0o600); err != nil {
		return fmt.Errorf("failed to write cart file for %s: %w", cartID, err)
	}

	return nil
}
