package store

import (
	json "github.com/goccy/go-json"

	"aurad/internal/engine"
	"aurad/internal/models"
	"aurad/internal/providers"
)

// Storage keys are frozen: they address records written by earlier app
// versions and must never change.
const (
	keyUserName         = "aura-spoon-username"
	keyToday            = "aura-spoon-today"
	keyLegacyCollection = "aura-spoon-collection"
	keyStreak           = "aura-spoon-streak"
	keyCollection       = "aura-spoon-collection-v2"
	keyMascot           = "aura-spoon-mascot"
	keyFeedingLog       = "aura-spoon-feeding-log"
	keyProfile          = "aura-spoon-profile"
)

// RepositoryInterface owns all durable records, one method pair per entity.
// Reads degrade to defaults on a miss or a corrupted record; writes are
// best-effort — failures are logged and swallowed so the caller can proceed
// with the in-memory result (durability is not guaranteed by contract).
type RepositoryInterface interface {
	UserName() string
	SaveUserName(name string)
	Today(today string) *models.TodayRecord
	SaveToday(rec *models.TodayRecord)
	LegacyCollection() *models.LegacyCollection
	SaveLegacyCollection(col *models.LegacyCollection)
	Streak(today, yesterday string) models.StreakRecord
	SaveStreak(rec models.StreakRecord)
	Collection() *models.Collection
	SaveCollection(col *models.Collection)
	Mascot() *models.Mascot
	SaveMascot(m *models.Mascot)
	FeedingLog() []models.FeedingLogEntry
	SaveFeedingLog(entries []models.FeedingLogEntry, cutoff string)
	Profile() *models.ProfileMeta
	SaveProfile(p *models.ProfileMeta)
}

type Repository struct {
	kv     KV
	logger providers.Logger
}

func NewRepository(kv KV, logger providers.Logger) RepositoryInterface {
	return &Repository{kv: kv, logger: logger}
}

// load unmarshals a record into out. Missing and malformed records both
// count as absent.
func (r *Repository) load(key string, out interface{}) bool {
	raw, ok := r.kv.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		r.logger.Warnf(providers.TypeApp, "Malformed record %s, using defaults: %s", key, err)
		return false
	}
	return true
}

func (r *Repository) save(key string, val interface{}) {
	raw, err := json.Marshal(val)
	if err != nil {
		r.logger.Errorf(providers.TypeApp, "Failed to encode record %s: %s", key, err)
		return
	}
	if err := r.kv.Set(key, raw); err != nil {
		r.logger.Warnf(providers.TypeApp, "Failed to persist record %s: %s", key, err)
	}
}

func (r *Repository) UserName() string {
	var name string
	r.load(keyUserName, &name)
	return name
}

func (r *Repository) SaveUserName(name string) {
	r.save(keyUserName, name)
}

// Today returns the current day's draw, or nil when the stored record is
// from an earlier day.
func (r *Repository) Today(today string) *models.TodayRecord {
	var rec models.TodayRecord
	if !r.load(keyToday, &rec) || rec.Date != today {
		return nil
	}
	return &rec
}

func (r *Repository) SaveToday(rec *models.TodayRecord) {
	r.save(keyToday, rec)
}

func (r *Repository) LegacyCollection() *models.LegacyCollection {
	var col models.LegacyCollection
	r.load(keyLegacyCollection, &col)
	return &col
}

func (r *Repository) SaveLegacyCollection(col *models.LegacyCollection) {
	r.save(keyLegacyCollection, col)
}

// Streak applies the read-side decay: a record older than yesterday reads
// as no streak at all.
func (r *Repository) Streak(today, yesterday string) models.StreakRecord {
	var rec models.StreakRecord
	if !r.load(keyStreak, &rec) {
		return models.StreakRecord{}
	}
	return engine.DisplayStreak(rec, today, yesterday)
}

func (r *Repository) SaveStreak(rec models.StreakRecord) {
	r.save(keyStreak, rec)
}

func (r *Repository) Collection() *models.Collection {
	var col models.Collection
	r.load(keyCollection, &col)
	if col.Entries == nil {
		col.Entries = []*models.CollectionEntry{}
	}
	return &col
}

func (r *Repository) SaveCollection(col *models.Collection) {
	r.save(keyCollection, col)
}

func (r *Repository) Mascot() *models.Mascot {
	var m models.Mascot
	if !r.load(keyMascot, &m) {
		return nil
	}
	return &m
}

func (r *Repository) SaveMascot(m *models.Mascot) {
	r.save(keyMascot, m)
}

func (r *Repository) FeedingLog() []models.FeedingLogEntry {
	var entries []models.FeedingLogEntry
	r.load(keyFeedingLog, &entries)
	return entries
}

// SaveFeedingLog persists the log, dropping entries dated before cutoff.
func (r *Repository) SaveFeedingLog(entries []models.FeedingLogEntry, cutoff string) {
	kept := make([]models.FeedingLogEntry, 0, len(entries))
	for _, e := range entries {
		if e.Date >= cutoff {
			kept = append(kept, e)
		}
	}
	r.save(keyFeedingLog, kept)
}

func (r *Repository) Profile() *models.ProfileMeta {
	var p models.ProfileMeta
	if !r.load(keyProfile, &p) {
		return nil
	}
	return &p
}

func (r *Repository) SaveProfile(p *models.ProfileMeta) {
	r.save(keyProfile, p)
}
