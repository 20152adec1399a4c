package prison

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/model"
)

const botID = "bot"

type stubSession struct {
	guild   *discordgo.Guild
	members map[string]*discordgo.Member

	createdRole  *discordgo.Role
	overwrites   []string // channelID:targetID
	editedRoles  map[string][]string
	addedRoles   []string
	removedRoles []string
}

func (s *stubSession) Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error) {
	return s.guild, nil
}

func (s *stubSession) GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error) {
	m, ok := s.members[userID]
	if !ok {
		return nil, errors.New("unknown member")
	}
	return m, nil
}

func (s *stubSession) GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error) {
	return s.guild.Channels, nil
}

func (s *stubSession) GuildRoleCreate(guildID string, data *discordgo.RoleParams, options ...discordgo.RequestOption) (*discordgo.Role, error) {
	role := &discordgo.Role{ID: "prisoner-role", Name: data.Name, Position: 1}
	s.createdRole = role
	s.guild.Roles = append(s.guild.Roles, role)
	return role, nil
}

func (s *stubSession) GuildMemberEdit(guildID, userID string, data *discordgo.GuildMemberParams, options ...discordgo.RequestOption) (*discordgo.Member, error) {
	if s.editedRoles == nil {
		s.editedRoles = make(map[string][]string)
	}
	s.editedRoles[userID] = *data.Roles
	return s.members[userID], nil
}

func (s *stubSession) GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error {
	s.addedRoles = append(s.addedRoles, userID+":"+roleID)
	return nil
}

func (s *stubSession) GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error {
	s.removedRoles = append(s.removedRoles, userID+":"+roleID)
	return nil
}

func (s *stubSession) ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64, options ...discordgo.RequestOption) error {
	s.overwrites = append(s.overwrites, channelID+":"+targetID)
	return nil
}

type memRecordStore struct {
	records map[string]*model.PrisonRecord
}

func newMemRecordStore() *memRecordStore {
	return &memRecordStore{records: make(map[string]*model.PrisonRecord)}
}

func (r *memRecordStore) AddPrisoner(guildID, userID, prisonChannelID, moderatorID, reason string, savedRoles *string) error {
	r.records[guildID+":"+userID] = &model.PrisonRecord{
		GuildID: guildID, UserID: userID, PrisonChannelID: prisonChannelID,
		ModeratorID: moderatorID, Reason: reason, SavedRoles: savedRoles,
	}
	return nil
}

func (r *memRecordStore) GetPrisoner(guildID, userID string) (*model.PrisonRecord, error) {
	return r.records[guildID+":"+userID], nil
}

func (r *memRecordStore) RemovePrisoner(guildID, userID string) error {
	delete(r.records, guildID+":"+userID)
	return nil
}

func testGuild() *discordgo.Guild {
	return &discordgo.Guild{
		ID: "g1",
		Roles: []*discordgo.Role{
			{ID: "bot-role", Name: "Bot", Position: 10},
			{ID: "admin-role", Name: "Admin", Position: 2, Permissions: discordgo.PermissionAdministrator},
			{ID: "member-role", Name: "Member", Position: 2},
			{ID: "top-role", Name: "Top", Position: 20},
		},
		Channels: []*discordgo.Channel{{ID: "general"}, {ID: "random"}},
	}
}

func newTestManager() (*Manager, *stubSession, *memRecordStore) {
	session := &stubSession{
		guild: testGuild(),
		members: map[string]*discordgo.Member{
			botID:     {User: &discordgo.User{ID: botID}, Roles: []string{"bot-role"}},
			"u1":      {User: &discordgo.User{ID: "u1"}, Roles: []string{"admin-role"}},
			"regular": {User: &discordgo.User{ID: "regular"}, Roles: []string{"member-role"}},
		},
	}
	store := newMemRecordStore()
	return NewManager(session, store, botID), session, store
}

func TestImprisonSnapshotsAndStripsRoles(t *testing.T) {
	m, session, store := newTestManager()

	if err := m.Imprison("g1", "u1", "cell", "mod", "contraband"); err != nil {
		t.Fatalf("Imprison: %v", err)
	}

	if session.createdRole == nil || session.createdRole.Name != PrisonerRoleName {
		t.Fatalf("prisoner role not created: %+v", session.createdRole)
	}
	// Denied on both existing channels, granted on the cell.
	if len(session.overwrites) != 3 {
		t.Fatalf("expected 3 permission overwrites, got %v", session.overwrites)
	}
	got := session.editedRoles["u1"]
	if len(got) != 1 || got[0] != "prisoner-role" {
		t.Fatalf("expected roles replaced with prisoner role, got %v", got)
	}

	record, _ := store.GetPrisoner("g1", "u1")
	if record == nil || record.SavedRoles == nil {
		t.Fatal("expected a record with a role snapshot")
	}
	if *record.SavedRoles != `["admin-role"]` {
		t.Fatalf("unexpected snapshot: %s", *record.SavedRoles)
	}
}

func TestImprisonRegularMemberGetsRoleStacked(t *testing.T) {
	m, session, store := newTestManager()

	if err := m.Imprison("g1", "regular", "cell", "mod", "contraband"); err != nil {
		t.Fatalf("Imprison: %v", err)
	}
	if len(session.editedRoles) != 0 {
		t.Fatalf("a regular member's roles must not be replaced")
	}
	if len(session.addedRoles) != 1 || session.addedRoles[0] != "regular:prisoner-role" {
		t.Fatalf("expected prisoner role stacked on top, got %v", session.addedRoles)
	}
	record, _ := store.GetPrisoner("g1", "regular")
	if record == nil || record.SavedRoles != nil {
		t.Fatal("stacked imprisonment must not carry a snapshot")
	}
}

func TestReimprisonKeepsFirstSnapshot(t *testing.T) {
	m, _, store := newTestManager()

	if err := m.Imprison("g1", "u1", "cell", "mod", "first"); err != nil {
		t.Fatalf("first Imprison: %v", err)
	}
	first, _ := store.GetPrisoner("g1", "u1")

	if err := m.Imprison("g1", "u1", "cell2", "mod2", "second"); err != nil {
		t.Fatalf("second Imprison: %v", err)
	}
	second, _ := store.GetPrisoner("g1", "u1")
	if second.Reason != "second" || second.PrisonChannelID != "cell2" {
		t.Fatalf("record not overwritten: %+v", second)
	}
	if second.SavedRoles == nil || *second.SavedRoles != *first.SavedRoles {
		t.Fatalf("snapshot must survive re-imprisonment: %v vs %v", second.SavedRoles, first.SavedRoles)
	}
}

func TestImprisonRefusedWhenTargetOutranksBot(t *testing.T) {
	m, session, store := newTestManager()
	session.members["towering"] = &discordgo.Member{
		User: &discordgo.User{ID: "towering"}, Roles: []string{"top-role"},
	}

	if err := m.Imprison("g1", "towering", "cell", "mod", "x"); !errors.Is(err, ErrTargetOutranksBot) {
		t.Fatalf("expected ErrTargetOutranksBot, got %v", err)
	}
	if session.createdRole != nil || len(session.overwrites) != 0 {
		t.Fatal("no role or overwrite may be touched when the target outranks the bot")
	}
	if len(session.editedRoles) != 0 || len(session.addedRoles) != 0 {
		t.Fatal("the target's roles must stay untouched")
	}
	if record, _ := store.GetPrisoner("g1", "towering"); record != nil {
		t.Fatal("no record may be created for a refused imprisonment")
	}
}

func TestImprisonRefusedWhenModeratorDoesNotOutrankTarget(t *testing.T) {
	m, session, store := newTestManager()
	session.members["warden"] = &discordgo.Member{
		User: &discordgo.User{ID: "warden"}, Roles: []string{"member-role"},
	}

	// warden and u1 sit at the same position, which is not above.
	if err := m.Imprison("g1", "u1", "cell", "warden", "x"); !errors.Is(err, ErrActorOutranked) {
		t.Fatalf("expected ErrActorOutranked, got %v", err)
	}
	if len(session.editedRoles) != 0 || len(session.addedRoles) != 0 {
		t.Fatal("the target's roles must stay untouched")
	}
	if record, _ := store.GetPrisoner("g1", "u1"); record != nil {
		t.Fatal("no record may be created for a refused imprisonment")
	}
}

func TestReleaseRoundTrip(t *testing.T) {
	m, session, store := newTestManager()

	if err := m.Imprison("g1", "u1", "cell", "mod", "contraband"); err != nil {
		t.Fatalf("Imprison: %v", err)
	}
	if err := m.Release("g1", "u1"); err != nil {
		t.Fatalf("Release: %v", err)
	}

	restored := session.editedRoles["u1"]
	if len(restored) != 1 || restored[0] != "admin-role" {
		t.Fatalf("expected original roles restored, got %v", restored)
	}
	if record, _ := store.GetPrisoner("g1", "u1"); record != nil {
		t.Fatal("record must be gone after release")
	}
}

func TestReleaseDropsRolesDeletedSinceSnapshot(t *testing.T) {
	m, session, store := newTestManager()
	snapshot := `["admin-role","deleted-role"]`
	store.AddPrisoner("g1", "u1", "cell", "mod", "x", &snapshot)

	if err := m.Release("g1", "u1"); err != nil {
		t.Fatalf("Release: %v", err)
	}
	restored := session.editedRoles["u1"]
	if len(restored) != 1 || restored[0] != "admin-role" {
		t.Fatalf("expected the deleted role dropped from the restore, got %v", restored)
	}
	if record, _ := store.GetPrisoner("g1", "u1"); record != nil {
		t.Fatal("record must be gone after release")
	}
}

func TestReleaseWithoutRecordIsDistinctNoop(t *testing.T) {
	m, _, _ := newTestManager()
	if err := m.Release("g1", "u1"); !errors.Is(err, ErrNotImprisoned) {
		t.Fatalf("expected ErrNotImprisoned, got %v", err)
	}
}

func TestReleaseAbortsOnCorruptSnapshot(t *testing.T) {
	m, _, store := newTestManager()
	bad := `{"not":"a list"`
	store.AddPrisoner("g1", "u1", "cell", "mod", "x", &bad)

	if err := m.Release("g1", "u1"); !errors.Is(err, ErrCorruptSnapshot) {
		t.Fatalf("expected ErrCorruptSnapshot, got %v", err)
	}
	if record, _ := store.GetPrisoner("g1", "u1"); record == nil {
		t.Fatal("record must be kept when the snapshot is corrupt")
	}
}

func TestReleaseAbortsWhenSavedRoleOutranksBot(t *testing.T) {
	m, session, store := newTestManager()
	snapshot := `["top-role"]`
	store.AddPrisoner("g1", "u1", "cell", "mod", "x", &snapshot)

	if err := m.Release("g1", "u1"); !errors.Is(err, ErrRoleOutranksBot) {
		t.Fatalf("expected ErrRoleOutranksBot, got %v", err)
	}
	if len(session.editedRoles) != 0 {
		t.Fatal("no role edits may happen when the restore is refused")
	}
	if record, _ := store.GetPrisoner("g1", "u1"); record == nil {
		t.Fatal("record must be kept when the restore is refused")
	}
}
