package shop

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/noasueur88-blip/lounge-senpai-3/model"
	"github.com/noasueur88-blip/lounge-senpai-3/shopdata"
)

type stubProgressStore struct {
	progress model.UserProgress
	moneyOps []int64
	xpOps    []int64
}

func (s *stubProgressStore) GetUserProgress(guildID, userID string) (*model.UserProgress, error) {
	p := s.progress
	return &p, nil
}

func (s *stubProgressStore) UpdateUserXP(guildID, userID string, xp int64, level int) error {
	s.xpOps = append(s.xpOps, xp)
	return nil
}

func (s *stubProgressStore) AddMoney(guildID, userID string, delta int64) error {
	s.moneyOps = append(s.moneyOps, delta)
	return nil
}

type stubRoleAdder struct {
	granted []string
}

func (s *stubRoleAdder) GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error {
	s.granted = append(s.granted, roleID)
	return nil
}

func newTestShop(t *testing.T, items map[string]model.ShopItem) *shopdata.Repository {
	t.Helper()
	repo, err := shopdata.Load(filepath.Join(t.TempDir(), "shop.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	err = repo.UpdateGuild("g1", func(d *model.GuildShopData) {
		for id, item := range items {
			d.Items[id] = item
		}
	})
	if err != nil {
		t.Fatalf("UpdateGuild: %v", err)
	}
	return repo
}

func TestBuyChargesAndGrantsRole(t *testing.T) {
	repo := newTestShop(t, map[string]model.ShopItem{
		"vip": {DisplayName: "VIP", Price: 100, RoleID: "r-vip", Quantity: -1},
	})
	store := &stubProgressStore{progress: model.UserProgress{Money: 150, XP: 10}}
	session := &stubRoleAdder{}

	item, err := Buy(store, repo, session, "g1", "u1", "vip")
	if err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if item.DisplayName != "VIP" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if len(store.moneyOps) != 1 || store.moneyOps[0] != -100 {
		t.Fatalf("expected a -100 charge, got %v", store.moneyOps)
	}
	if len(session.granted) != 1 || session.granted[0] != "r-vip" {
		t.Fatalf("expected role r-vip granted, got %v", session.granted)
	}
}

func TestBuyRejectsPoorAndUnderleveled(t *testing.T) {
	repo := newTestShop(t, map[string]model.ShopItem{
		"vip":   {DisplayName: "VIP", Price: 100, Quantity: -1},
		"badge": {DisplayName: "Badge", XPCost: 500, Quantity: -1},
	})
	store := &stubProgressStore{progress: model.UserProgress{Money: 50, XP: 100}}

	if _, err := Buy(store, repo, &stubRoleAdder{}, "g1", "u1", "vip"); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if _, err := Buy(store, repo, &stubRoleAdder{}, "g1", "u1", "badge"); !errors.Is(err, ErrInsufficientXP) {
		t.Fatalf("expected ErrInsufficientXP, got %v", err)
	}
	if len(store.moneyOps) != 0 || len(store.xpOps) != 0 {
		t.Fatalf("no charges may happen on a rejected purchase: %v %v", store.moneyOps, store.xpOps)
	}
}

func TestBuyDecrementsFiniteStock(t *testing.T) {
	repo := newTestShop(t, map[string]model.ShopItem{
		"limited": {DisplayName: "Limited", Price: 10, Quantity: 1},
	})
	store := &stubProgressStore{progress: model.UserProgress{Money: 100}}

	if _, err := Buy(store, repo, &stubRoleAdder{}, "g1", "u1", "limited"); err != nil {
		t.Fatalf("first Buy: %v", err)
	}
	if got := repo.Guild("g1").Items["limited"].Quantity; got != 0 {
		t.Fatalf("stock should be 0, got %d", got)
	}
	if _, err := Buy(store, repo, &stubRoleAdder{}, "g1", "u1", "limited"); !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got %v", err)
	}
}

func TestBuyUnknownItem(t *testing.T) {
	repo := newTestShop(t, nil)
	store := &stubProgressStore{}
	if _, err := Buy(store, repo, &stubRoleAdder{}, "g1", "u1", "ghost"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}

func TestBuyXPCostAndGainNetOut(t *testing.T) {
	repo := newTestShop(t, map[string]model.ShopItem{
		"course": {DisplayName: "Course", Price: 20, XPCost: 100, XPGain: 400, Quantity: -1},
	})
	store := &stubProgressStore{progress: model.UserProgress{Money: 100, XP: 200}}

	if _, err := Buy(store, repo, &stubRoleAdder{}, "g1", "u1", "course"); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if len(store.xpOps) != 1 || store.xpOps[0] != 500 {
		t.Fatalf("expected XP set to 500 (200-100+400), got %v", store.xpOps)
	}
}
