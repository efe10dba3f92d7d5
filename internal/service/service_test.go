package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/clubhouse/internal/auth"
	"github.com/mmynk/clubhouse/internal/club"
	"github.com/mmynk/clubhouse/internal/middleware"
	"github.com/mmynk/clubhouse/internal/storage/sqlite"
	"github.com/mmynk/clubhouse/pkg/clubapi"
	"github.com/mmynk/clubhouse/pkg/clubapi/clubapiconnect"
)

type testClients struct {
	groups   clubapiconnect.GroupServiceClient
	schedule clubapiconnect.ScheduleServiceClient
	ledger   clubapiconnect.LedgerServiceClient
	auth     clubapiconnect.AuthServiceClient
}

// setupTestServer serves all four services behind the auth interceptor.
func setupTestServer(t *testing.T) testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store,
		auth.WithCost(bcrypt.MinCost),
		auth.WithAdminEmails("root@example.com"),
	)
	engine := club.New(store)

	mux := http.NewServeMux()
	Mount(mux, engine, NewAuthService(authenticator, jwtManager, store, engine, logger),
		connect.WithInterceptors(
			middleware.Authenticate(jwtManager, PublicProcedures...),
			middleware.MetricsInterceptor(),
		),
	)
	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return testClients{
		groups:   clubapiconnect.NewGroupServiceClient(http.DefaultClient, server.URL),
		schedule: clubapiconnect.NewScheduleServiceClient(http.DefaultClient, server.URL),
		ledger:   clubapiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL),
		auth:     clubapiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
	}
}

// register signs up a user and returns the user and its token.
func register(t *testing.T, c testClients, nickname string) (*clubapi.User, string) {
	t.Helper()
	resp, err := c.auth.Register(context.Background(), connect.NewRequest(&clubapi.RegisterRequest{
		Email:    nickname + "@example.com",
		Nickname: nickname,
		Password: "password123",
	}))
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", nickname, err)
	}
	return resp.Msg.User, resp.Msg.Token
}

// as builds a request carrying the bearer token.
func as[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	return req
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got success", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected a connect error, got %v", err)
	}
	if connectErr.Code() != want {
		t.Errorf("code: expected %v, got %v (%s)", want, connectErr.Code(), connectErr.Message())
	}
}

func TestBookClubOverRPC(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	_, alice := register(t, c, "alice")
	_, bob := register(t, c, "bob")

	created, err := c.groups.CreateGroup(ctx, as(alice, &clubapi.CreateGroupRequest{
		Name: "Book Club", Category: "reading", MaxMembers: 10,
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	groupID := created.Msg.Group.ID
	if created.Msg.Group.Status != "recruiting" {
		t.Errorf("status: expected recruiting, got %s", created.Msg.Group.Status)
	}

	joined, err := c.groups.RequestJoin(ctx, as(bob, &clubapi.RequestJoinRequest{GroupID: groupID}))
	if err != nil {
		t.Fatalf("RequestJoin failed: %v", err)
	}
	if joined.Msg.Outcome != "applied" || joined.Msg.Membership.Role != "PENDING" {
		t.Errorf("unexpected join result %+v", joined.Msg)
	}

	for i, want := range []string{"applied", "already_processed"} {
		approved, err := c.groups.Approve(ctx, as(alice, &clubapi.ApproveRequest{
			GroupID: groupID, MembershipID: joined.Msg.Membership.ID,
		}))
		if err != nil {
			t.Fatalf("Approve #%d failed: %v", i+1, err)
		}
		if approved.Msg.Outcome != want || approved.Msg.Membership.Role != "MEMBER" {
			t.Errorf("Approve #%d: expected %s/MEMBER, got %+v", i+1, want, approved.Msg)
		}
	}

	for _, amount := range []string{"50000", "-12000"} {
		if _, err := c.ledger.RecordTransaction(ctx, as(alice, &clubapi.RecordTransactionRequest{
			GroupID: groupID, Amount: amount, Description: "entry " + amount,
		})); err != nil {
			t.Fatalf("RecordTransaction(%s) failed: %v", amount, err)
		}
	}

	balance, err := c.ledger.GetBalance(ctx, as(bob, &clubapi.GetBalanceRequest{GroupID: groupID}))
	if err != nil {
		t.Fatalf("GetBalance failed: %v", err)
	}
	if balance.Msg.Balance != 38000 {
		t.Errorf("balance: expected 38000, got %d", balance.Msg.Balance)
	}

	_, err = c.schedule.CreateActivity(ctx, as(bob, &clubapi.CreateActivityRequest{
		GroupID: groupID, Title: "Reading night", StartsAt: "2026-03-10T19:00", Location: "Library",
	}))
	expectCode(t, err, connect.CodePermissionDenied)

	list, err := c.schedule.ListActivities(ctx, as(bob, &clubapi.ListActivitiesRequest{GroupID: groupID}))
	if err != nil {
		t.Fatalf("ListActivities failed: %v", err)
	}
	if len(list.Msg.Activities) != 0 {
		t.Errorf("expected no activities, got %d", len(list.Msg.Activities))
	}
}

func TestAnonymousAccess(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	_, alice := register(t, c, "alice")

	created, err := c.groups.CreateGroup(ctx, as(alice, &clubapi.CreateGroupRequest{
		Name: "Trail Runners", Category: "sports", Region: "Busan", MaxMembers: 20,
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	list, err := c.groups.ListGroups(ctx, connect.NewRequest(&clubapi.ListGroupsRequest{Region: "busan"}))
	if err != nil {
		t.Fatalf("anonymous ListGroups failed: %v", err)
	}
	if len(list.Msg.Groups) != 1 {
		t.Errorf("expected 1 group, got %d", len(list.Msg.Groups))
	}

	detail, err := c.groups.GetGroup(ctx, connect.NewRequest(&clubapi.GetGroupRequest{GroupID: created.Msg.Group.ID}))
	if err != nil {
		t.Fatalf("anonymous GetGroup failed: %v", err)
	}
	if detail.Msg.Group.LeaderNickname != "alice" || detail.Msg.Group.MemberCount != 1 {
		t.Errorf("unexpected detail %+v", detail.Msg.Group)
	}

	_, err = c.groups.RequestJoin(ctx, connect.NewRequest(&clubapi.RequestJoinRequest{GroupID: created.Msg.Group.ID}))
	expectCode(t, err, connect.CodeUnauthenticated)

	_, err = c.ledger.GetBalance(ctx, as("not-a-token", &clubapi.GetBalanceRequest{GroupID: created.Msg.Group.ID}))
	expectCode(t, err, connect.CodeUnauthenticated)

	_, err = c.groups.GetGroup(ctx, connect.NewRequest(&clubapi.GetGroupRequest{GroupID: "missing"}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestErrorCodes(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	_, alice := register(t, c, "alice")
	_, bob := register(t, c, "bob")

	created, err := c.groups.CreateGroup(ctx, as(alice, &clubapi.CreateGroupRequest{
		Name: "Book Club", Category: "reading", MaxMembers: 10,
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	groupID := created.Msg.Group.ID

	t.Run("validation", func(t *testing.T) {
		_, err := c.groups.CreateGroup(ctx, as(alice, &clubapi.CreateGroupRequest{Name: "x", Category: "knitting", MaxMembers: 1}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("conflict", func(t *testing.T) {
		_, err := c.groups.CreateGroup(ctx, as(bob, &clubapi.CreateGroupRequest{Name: "book club", Category: "reading", MaxMembers: 5}))
		expectCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("forbidden", func(t *testing.T) {
		_, err := c.ledger.RecordTransaction(ctx, as(bob, &clubapi.RecordTransactionRequest{
			GroupID: groupID, Amount: "100", Description: "sneaky",
		}))
		expectCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		_, err := c.auth.Register(ctx, connect.NewRequest(&clubapi.RegisterRequest{
			Email: "carol@example.com", Nickname: "alice", Password: "password123",
		}))
		expectCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("bad login", func(t *testing.T) {
		_, err := c.auth.Login(ctx, connect.NewRequest(&clubapi.LoginRequest{Email: "alice@example.com", Password: "nope-nope"}))
		expectCode(t, err, connect.CodeUnauthenticated)
	})
}

func TestScheduleOverRPC(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	aliceUser, alice := register(t, c, "alice")
	bobUser, bob := register(t, c, "bob")

	created, err := c.groups.CreateGroup(ctx, as(alice, &clubapi.CreateGroupRequest{
		Name: "Book Club", Category: "reading", MaxMembers: 10,
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	groupID := created.Msg.Group.ID
	joined, err := c.groups.RequestJoin(ctx, as(bob, &clubapi.RequestJoinRequest{GroupID: groupID}))
	if err != nil {
		t.Fatalf("RequestJoin failed: %v", err)
	}
	if _, err := c.groups.Approve(ctx, as(alice, &clubapi.ApproveRequest{GroupID: groupID, MembershipID: joined.Msg.Membership.ID})); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	act, err := c.schedule.CreateActivity(ctx, as(alice, &clubapi.CreateActivityRequest{
		GroupID: groupID, Title: "Reading night", StartsAt: "2026-03-10T19:00", Location: "Library", Fee: "abc",
	}))
	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}
	if act.Msg.Activity.Fee != 0 {
		t.Errorf("fee: expected 0, got %d", act.Msg.Activity.Fee)
	}
	activityID := act.Msg.Activity.ID

	if _, err := c.schedule.RecordRSVP(ctx, as(bob, &clubapi.RecordRSVPRequest{ActivityID: activityID, Intent: "ATTENDING"})); err != nil {
		t.Fatalf("RecordRSVP failed: %v", err)
	}
	checked, err := c.schedule.RecordAttendanceCheck(ctx, as(alice, &clubapi.RecordAttendanceCheckRequest{
		ActivityID: activityID, UserID: bobUser.ID, Actual: "PRESENT",
	}))
	if err != nil {
		t.Fatalf("RecordAttendanceCheck failed: %v", err)
	}
	if checked.Msg.Attendance.Intent != "ATTENDING" || checked.Msg.Attendance.CheckedBy != aliceUser.ID {
		t.Errorf("unexpected attendance %+v", checked.Msg.Attendance)
	}

	list, err := c.schedule.ListActivities(ctx, as(bob, &clubapi.ListActivitiesRequest{GroupID: groupID}))
	if err != nil {
		t.Fatalf("ListActivities failed: %v", err)
	}
	if got := list.Msg.Activities[0]; got.ExpectedCount != 1 || got.PresentCount != 1 {
		t.Errorf("unexpected tallies %+v", got)
	}

	members, err := c.groups.ListMembers(ctx, as(bob, &clubapi.ListMembersRequest{GroupID: groupID}))
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members.Msg.Members) != 2 || members.Msg.Members[0].RoleLabel != "Leader" {
		t.Errorf("unexpected members %+v", members.Msg.Members)
	}
}

func TestAccountManagement(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	rootUser, root := register(t, c, "root")
	bobUser, bob := register(t, c, "bob")

	if rootUser.SiteRole != "admin" {
		t.Fatalf("root SiteRole: expected admin, got %s", rootUser.SiteRole)
	}

	renamed, err := c.auth.SetNickname(ctx, as(bob, &clubapi.SetNicknameRequest{Nickname: "robert"}))
	if err != nil {
		t.Fatalf("SetNickname failed: %v", err)
	}
	if renamed.Msg.User.Nickname != "robert" {
		t.Errorf("nickname: expected robert, got %s", renamed.Msg.User.Nickname)
	}

	me, err := c.auth.GetCurrentUser(ctx, as(bob, &clubapi.GetCurrentUserRequest{}))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if me.Msg.User.Nickname != "robert" || me.Msg.User.ID != bobUser.ID {
		t.Errorf("unexpected user %+v", me.Msg.User)
	}

	_, err = c.auth.RemoveUser(ctx, as(bob, &clubapi.RemoveUserRequest{UserID: rootUser.ID}))
	expectCode(t, err, connect.CodePermissionDenied)

	if _, err := c.auth.RemoveUser(ctx, as(root, &clubapi.RemoveUserRequest{UserID: bobUser.ID})); err != nil {
		t.Fatalf("RemoveUser failed: %v", err)
	}

	_, err = c.auth.GetCurrentUser(ctx, as(bob, &clubapi.GetCurrentUserRequest{}))
	expectCode(t, err, connect.CodeUnauthenticated)
}
