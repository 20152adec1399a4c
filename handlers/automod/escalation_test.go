package automod

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/model"
)

type stubStore struct {
	cfg        model.AutomodConfig
	warnings   int
	tempBans   []int64
	addErr     error
	nextWarnID int64
}

func (s *stubStore) AddWarning(guildID, userID, moderatorID, reason string) (int64, error) {
	if s.addErr != nil {
		return 0, s.addErr
	}
	s.warnings++
	s.nextWarnID++
	return s.nextWarnID, nil
}

func (s *stubStore) CountWarnings(guildID, userID string) (int, error) { return s.warnings, nil }

func (s *stubStore) AddTempBan(guildID, userID string, unbanTimestamp int64) error {
	s.tempBans = append(s.tempBans, unbanTimestamp)
	return nil
}

func (s *stubStore) GetAutomodConfig(guildID string) (model.AutomodConfig, error) {
	return s.cfg, nil
}

type stubSanctioner struct {
	bans     int
	timeouts int
	banErr   error
}

func (s *stubSanctioner) GuildBanCreateWithReason(guildID, userID, reason string, days int, options ...discordgo.RequestOption) error {
	s.bans++
	return s.banErr
}

func (s *stubSanctioner) GuildMemberTimeout(guildID, userID string, until *time.Time, options ...discordgo.RequestOption) error {
	s.timeouts++
	return nil
}

func TestPickSanctionMostSevereFirst(t *testing.T) {
	cfg := model.AutomodConfig{TimeoutThreshold: 3, TimeoutDurationMinutes: 10, TempBanThreshold: 5, PermBanThreshold: 8}
	cases := []struct {
		count int
		want  model.SanctionKind
	}{
		{1, model.SanctionNone},
		{3, model.SanctionTimeout},
		{4, model.SanctionTimeout},
		{5, model.SanctionTempBan},
		{7, model.SanctionTempBan},
		{8, model.SanctionPermBan},
		{20, model.SanctionPermBan},
	}
	for _, tc := range cases {
		if got := pickSanction(cfg, tc.count); got != tc.want {
			t.Errorf("count %d: got %s, want %s", tc.count, got, tc.want)
		}
	}
}

func TestPickSanctionDisabledTiersSkipped(t *testing.T) {
	cfg := model.AutomodConfig{TimeoutThreshold: 3, TimeoutDurationMinutes: 10, TempBanThreshold: 0, PermBanThreshold: 0}
	if got := pickSanction(cfg, 100); got != model.SanctionTimeout {
		t.Fatalf("disabled tiers must not fire, got %s", got)
	}
	if got := pickSanction(model.AutomodConfig{}, 100); got != model.SanctionNone {
		t.Fatalf("fully disabled config must never sanction, got %s", got)
	}
}

func TestZeroDurationTimeoutTierNeverFires(t *testing.T) {
	store := &stubStore{
		cfg:      model.AutomodConfig{TimeoutThreshold: 2, TimeoutDurationMinutes: 0},
		warnings: 1, // second warning lands on the timeout threshold
	}
	session := &stubSanctioner{}

	res, err := ProcessWarning(session, store, "g1", "u1", "mod", "spam")
	if err != nil {
		t.Fatalf("ProcessWarning: %v", err)
	}
	if res.Sanction != model.SanctionNone {
		t.Fatalf("a zero-duration timeout tier must not sanction, got %s", res.Sanction)
	}
	if session.timeouts != 0 {
		t.Fatalf("no timeout call may be made, got %d", session.timeouts)
	}
}

func TestProcessWarningTimeoutTierLeavesNoTempBan(t *testing.T) {
	store := &stubStore{
		cfg:      model.AutomodConfig{TimeoutThreshold: 3, TimeoutDurationMinutes: 10, TempBanThreshold: 5, TempBanDurationDays: 1},
		warnings: 2, // third warning lands on the timeout tier
	}
	session := &stubSanctioner{}

	res, err := ProcessWarning(session, store, "g1", "u1", "mod", "spam")
	if err != nil {
		t.Fatalf("ProcessWarning: %v", err)
	}
	if res.Sanction != model.SanctionTimeout {
		t.Fatalf("expected timeout, got %s", res.Sanction)
	}
	if session.timeouts != 1 || session.bans != 0 {
		t.Fatalf("expected one timeout and no bans, got %d/%d", session.timeouts, session.bans)
	}
	if len(store.tempBans) != 0 {
		t.Fatalf("timeout tier must not record a temp ban expiry")
	}
}

func TestProcessWarningTempBanRecordsExpiry(t *testing.T) {
	store := &stubStore{
		cfg:      model.AutomodConfig{TimeoutThreshold: 3, TempBanThreshold: 5, TempBanDurationDays: 2},
		warnings: 4,
	}
	session := &stubSanctioner{}

	before := time.Now().Add(2 * 24 * time.Hour).Unix()
	res, err := ProcessWarning(session, store, "g1", "u1", "mod", "spam")
	if err != nil {
		t.Fatalf("ProcessWarning: %v", err)
	}
	after := time.Now().Add(2 * 24 * time.Hour).Unix()

	if res.Sanction != model.SanctionTempBan || session.bans != 1 {
		t.Fatalf("expected one temp ban, got %s with %d bans", res.Sanction, session.bans)
	}
	if len(store.tempBans) != 1 {
		t.Fatalf("expected one recorded expiry, got %d", len(store.tempBans))
	}
	if ts := store.tempBans[0]; ts < before || ts > after {
		t.Fatalf("expiry %d outside expected window [%d, %d]", ts, before, after)
	}
}

func TestProcessWarningKeepsWarningWhenBanFails(t *testing.T) {
	store := &stubStore{
		cfg:      model.AutomodConfig{TempBanThreshold: 1, TempBanDurationDays: 1},
		warnings: 0,
	}
	session := &stubSanctioner{banErr: errors.New("missing permissions")}

	res, err := ProcessWarning(session, store, "g1", "u1", "mod", "spam")
	if err != nil {
		t.Fatalf("ProcessWarning: %v", err)
	}
	if res.SanctionErr == nil {
		t.Fatal("expected the platform failure to surface in the result")
	}
	if store.warnings != 1 {
		t.Fatalf("warning must persist despite the failed ban, count=%d", store.warnings)
	}
	if len(store.tempBans) != 0 {
		t.Fatalf("no expiry may be recorded when the ban failed")
	}
}
