package setting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/igolaizola/songstudio/pkg/storage"
)

type Config struct {
	Debug  bool
	DBType string
	DBConn string

	Output io.Writer
	Page   int
	Size   int
	Prefix string
}

// Run manages raw key-value documents. Args are "list", "get <key>",
// "set <key> <json>" or "delete <key>".
func Run(ctx context.Context, cfg *Config, args []string) error {
	if len(args) == 0 {
		return errors.New("setting: missing action")
	}
	store, err := storage.Open(ctx, cfg.DBType, cfg.DBConn, cfg.Debug)
	if err != nil {
		return fmt.Errorf("setting: couldn't open store: %w", err)
	}
	defer func() { _ = store.Stop() }()

	action, args := args[0], args[1:]
	key := func() (string, error) {
		if len(args) == 0 || args[0] == "" {
			return "", fmt.Errorf("setting: %s needs a key", action)
		}
		return args[0], nil
	}

	switch action {
	case "list":
		size := cfg.Size
		if size == 0 {
			size = 100
		}
		var filters []storage.Filter
		if cfg.Prefix != "" {
			filters = append(filters, storage.Where("id LIKE ?", cfg.Prefix+"%"))
		}
		vs, err := store.ListSettings(ctx, cfg.Page, size, filters...)
		if err != nil {
			return fmt.Errorf("setting: %w", err)
		}
		for _, v := range vs {
			fmt.Fprintf(cfg.Output, "%s\t%s\t%d bytes\n", v.ID, v.UpdatedAt.Format("2006-01-02 15:04:05"), len(v.Value))
		}
	case "get":
		k, err := key()
		if err != nil {
			return err
		}
		v, err := store.GetSetting(ctx, k)
		if err != nil {
			return fmt.Errorf("setting: couldn't get %s: %w", k, err)
		}
		fmt.Fprintln(cfg.Output, v.Value)
	case "set":
		k, err := key()
		if err != nil {
			return err
		}
		if len(args) < 2 {
			return errors.New("setting: value is empty")
		}
		value := strings.Join(args[1:], " ")
		if !json.Valid([]byte(value)) {
			return fmt.Errorf("setting: value of %s is not json", k)
		}
		if err := store.SetSetting(ctx, &storage.Setting{ID: k, Value: value}); err != nil {
			return fmt.Errorf("setting: couldn't save %s: %w", k, err)
		}
	case "delete":
		k, err := key()
		if err != nil {
			return err
		}
		if err := store.DeleteSetting(ctx, k); err != nil {
			return fmt.Errorf("setting: couldn't delete %s: %w", k, err)
		}
	default:
		return fmt.Errorf("setting: unknown action %q", action)
	}
	return nil
}
