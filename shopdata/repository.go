package shopdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/noasueur88-blip/lounge-senpai-3/model"
)

// Repository holds the per-guild shop and economy configuration backed by a
// single JSON file. All mutations go through UpdateGuild, which rewrites
// the whole document via a temp-file-and-rename swap so a crash can never
// leave a partial file behind. Writers within this process are serialized
// by the mutex; the last writer wins across processes.
type Repository struct {
	path string

	mu     sync.RWMutex
	guilds map[string]*model.GuildShopData
}

// Load reads the shop document from path, starting empty when the file
// does not exist yet.
func Load(path string) (*Repository, error) {
	r := &Repository{path: path, guilds: make(map[string]*model.GuildShopData)}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload replaces the in-memory document with the file contents.
func (r *Repository) Reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.guilds = make(map[string]*model.GuildShopData)
			return nil
		}
		return fmt.Errorf("failed to read shop data %s: %w", r.path, err)
	}
	guilds := make(map[string]*model.GuildShopData)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &guilds); err != nil {
			return fmt.Errorf("failed to parse shop data %s: %w", r.path, err)
		}
	}
	r.guilds = guilds
	return nil
}

// Guild returns a copy of the guild's shop document, defaulting missing
// fields so callers never see a half-initialized config.
func (r *Repository) Guild(guildID string) model.GuildShopData {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyGuildData(r.guilds[guildID])
}

// UpdateGuild applies fn to the guild's document and persists the whole
// file atomically.
func (r *Repository) UpdateGuild(guildID string, fn func(*model.GuildShopData)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.guilds[guildID]
	if data == nil {
		fresh := copyGuildData(nil)
		data = &fresh
		r.guilds[guildID] = data
	}
	if data.Items == nil {
		data.Items = make(map[string]model.ShopItem)
	}
	fn(data)
	return r.save()
}

func (r *Repository) save() error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create shop data directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(r.guilds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize shop data: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write shop data: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to swap shop data file: %w", err)
	}
	return nil
}

func copyGuildData(src *model.GuildShopData) model.GuildShopData {
	out := model.GuildShopData{
		Economy: model.DefaultEconomyConfig(),
		Items:   make(map[string]model.ShopItem),
	}
	if src == nil {
		return out
	}
	// Guilds may have customized only part of the config, default the
	// rest field by field.
	if src.Economy.CurrencyName != "" {
		out.Economy.CurrencyName = src.Economy.CurrencyName
	}
	if src.Economy.CurrencyEmoji != "" {
		out.Economy.CurrencyEmoji = src.Economy.CurrencyEmoji
	}
	if src.Economy.DailyMin > 0 {
		out.Economy.DailyMin = src.Economy.DailyMin
	}
	if src.Economy.DailyMax > 0 {
		out.Economy.DailyMax = src.Economy.DailyMax
	}
	for key, item := range src.Items {
		out.Items[key] = item
	}
	return out
}
