package scanner

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/model"
)

type stubBanStore struct {
	expired []model.TempBan
	loadErr error
	removed []int64
}

func (s *stubBanStore) GetExpiredBans(now int64) ([]model.TempBan, error) {
	return s.expired, s.loadErr
}

func (s *stubBanStore) RemoveTempBan(id int64) error {
	s.removed = append(s.removed, id)
	return nil
}

type stubUnbanner struct {
	errs  map[string]error
	calls []string
}

func (s *stubUnbanner) GuildBanDelete(guildID, userID string, options ...discordgo.RequestOption) error {
	s.calls = append(s.calls, guildID+":"+userID)
	return s.errs[userID]
}

func restError(code int) error {
	return &discordgo.RESTError{Response: &http.Response{StatusCode: code}}
}

func TestSweepOnceLiftsAndDeletes(t *testing.T) {
	store := &stubBanStore{expired: []model.TempBan{
		{ID: 1, GuildID: "g1", UserID: "u1", UnbanTimestamp: 100},
	}}
	session := &stubUnbanner{}
	sw := NewSweeper(store, session, nil, 0)

	sw.SweepOnce(time.Unix(200, 0))

	if len(session.calls) != 1 || session.calls[0] != "g1:u1" {
		t.Fatalf("unexpected unban calls: %v", session.calls)
	}
	if len(store.removed) != 1 || store.removed[0] != 1 {
		t.Fatalf("expected record 1 deleted, got %v", store.removed)
	}
}

func TestSweepOnceDropsRecordWhenBanAlreadyGone(t *testing.T) {
	store := &stubBanStore{expired: []model.TempBan{
		{ID: 7, GuildID: "g1", UserID: "gone", UnbanTimestamp: 100},
	}}
	session := &stubUnbanner{errs: map[string]error{"gone": restError(http.StatusNotFound)}}
	sw := NewSweeper(store, session, nil, 0)

	sw.SweepOnce(time.Unix(200, 0))

	if len(store.removed) != 1 || store.removed[0] != 7 {
		t.Fatalf("404 should still delete the record, got %v", store.removed)
	}
}

func TestSweepOnceKeepsRecordOnFailure(t *testing.T) {
	store := &stubBanStore{expired: []model.TempBan{
		{ID: 1, GuildID: "g1", UserID: "forbidden", UnbanTimestamp: 100},
		{ID: 2, GuildID: "g1", UserID: "flaky", UnbanTimestamp: 100},
		{ID: 3, GuildID: "g1", UserID: "ok", UnbanTimestamp: 100},
	}}
	session := &stubUnbanner{errs: map[string]error{
		"forbidden": restError(http.StatusForbidden),
		"flaky":     errors.New("connection reset"),
	}}
	sw := NewSweeper(store, session, nil, 0)

	sw.SweepOnce(time.Unix(200, 0))

	if len(store.removed) != 1 || store.removed[0] != 3 {
		t.Fatalf("only the successful unban should delete its record, got %v", store.removed)
	}
}

func TestSweepOnceDropsRecordForUnknownGuild(t *testing.T) {
	store := &stubBanStore{expired: []model.TempBan{
		{ID: 4, GuildID: "left-guild", UserID: "u1", UnbanTimestamp: 100},
	}}
	session := &stubUnbanner{}
	known := func(guildID string) bool { return guildID != "left-guild" }
	sw := NewSweeper(store, session, known, 0)

	sw.SweepOnce(time.Unix(200, 0))

	if len(session.calls) != 0 {
		t.Fatalf("no unban should be attempted for a guild the bot left, got %v", session.calls)
	}
	if len(store.removed) != 1 || store.removed[0] != 4 {
		t.Fatalf("stale record should be dropped, got %v", store.removed)
	}
}

func TestSweepOnceAbortsWhenStoreFails(t *testing.T) {
	store := &stubBanStore{loadErr: errors.New("database is closed")}
	session := &stubUnbanner{}
	sw := NewSweeper(store, session, nil, 0)

	sw.SweepOnce(time.Unix(200, 0))

	if len(session.calls) != 0 {
		t.Fatalf("no unbans expected when the store fails, got %v", session.calls)
	}
}

func TestSweepWaitsForReady(t *testing.T) {
	sw := NewSweeper(&stubBanStore{}, &stubUnbanner{}, nil, 0)
	if sw.ready.Load() {
		t.Fatal("sweeper should start gated")
	}
	sw.MarkReady()
	if !sw.ready.Load() {
		t.Fatal("MarkReady should open the gate")
	}
}
