package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/catalog/internal/common"
	"github.com/dmitrijs2005/catalog/internal/future"
	"github.com/dmitrijs2005/catalog/internal/server/auth"
	"github.com/dmitrijs2005/catalog/internal/server/models"
)

func signUp(t *testing.T, rm *fakeRepoManager, body string) {
	t.Helper()
	r := SignUp(newScope(rm, &fakeRequest{body: []byte(body)}, nil)).Await(context.Background())
	require.True(t, r.IsOk(), "%v", r.Failure())
}

func TestSignUp(t *testing.T) {
	rm := newFakeRepoManager()
	sc := newScope(rm, &fakeRequest{body: []byte(`{"username":"alice","password":"p@ss","email":"a@x.com"}`)}, nil)

	r := SignUp(sc).Await(context.Background())
	require.True(t, r.IsOk(), "%v", r.Failure())
	assert.Equal(t, models.UserSignUpResponse{ID: 1, UserName: "alice", Email: "a@x.com"}, r.Value())

	require.Len(t, rm.u.created, 1)
	stored := rm.u.created[0]
	assert.NotEqual(t, "p@ss", stored.SecurePassword)
	assert.False(t, stored.IsSuperuser)
	assert.True(t, auth.CheckPassword(sc.Config.SecretKey, "p@ss", stored.SecurePassword).IsOk())
}

func TestSignUp_Duplicate(t *testing.T) {
	rm := newFakeRepoManager()
	body := `{"username":"alice","password":"p@ss","email":"a@x.com"}`
	signUp(t, rm, body)

	r := SignUp(newScope(rm, &fakeRequest{body: []byte(body)}, nil)).Await(context.Background())
	assert.ErrorIs(t, r.Failure(), common.ErrAlreadyExists)
	assert.Len(t, rm.u.created, 1)
}

func TestSignUp_BadBody(t *testing.T) {
	tests := []struct {
		name string
		req  *fakeRequest
		want *common.Error
	}{
		{"missing field", &fakeRequest{body: []byte(`{"username":"alice"}`)}, common.ErrValidationFailed},
		{"malformed", &fakeRequest{body: []byte(`{`)}, common.ErrValidationFailed},
		{"read failure", &fakeRequest{bodyErr: errors.New("i/o timeout")}, common.ErrRequestTimedOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := newFakeRepoManager()
			r := SignUp(newScope(rm, tt.req, nil)).Await(context.Background())
			assert.ErrorIs(t, r.Failure(), tt.want)
			assert.Empty(t, rm.u.created)
		})
	}
}

func TestRegisterUser_Superuser(t *testing.T) {
	rm := newFakeRepoManager()
	sc := newScope(rm, nil, nil)

	r := RegisterUser(sc, models.UserSignUpRequest{UserName: "root", Password: "pw", Email: "r@x"}, true).Await(context.Background())
	require.True(t, r.IsOk())
	assert.True(t, rm.u.created[0].IsSuperuser)
}

func TestSignIn(t *testing.T) {
	rm := newFakeRepoManager()
	signUp(t, rm, `{"username":"alice","password":"p@ss","email":"a@x.com"}`)

	sess := &fakeSession{}
	sc := newScope(rm, &fakeRequest{body: []byte(`{"username":"alice","password":"p@ss"}`)}, sess)

	r := SignIn(sc).Await(context.Background())
	require.True(t, r.IsOk(), "%v", r.Failure())
	assert.Equal(t, models.UserSignInResponse{UserID: 1, UserName: "alice"}, r.Value())

	require.True(t, sess.present)
	id := auth.VerifyToken(sc.Config.SecretKey, sess.token)
	require.True(t, id.IsOk())
	assert.Equal(t, int64(1), id.Value())
}

func TestSignIn_FailuresAreIndistinguishable(t *testing.T) {
	rm := newFakeRepoManager()
	signUp(t, rm, `{"username":"alice","password":"p@ss","email":"a@x.com"}`)

	var got []*common.Error
	for _, body := range []string{
		`{"username":"alice","password":"wrong"}`,
		`{"username":"bob","password":"p@ss"}`,
	} {
		sess := &fakeSession{}
		r := SignIn(newScope(rm, &fakeRequest{body: []byte(body)}, sess)).Await(context.Background())
		require.False(t, r.IsOk())
		assert.False(t, sess.present, "no token on failure")
		got = append(got, r.Failure())
	}

	assert.Equal(t, got[0].Response(), got[1].Response())
	assert.ErrorIs(t, got[0], common.ErrAuthenticationFailed)
}

func TestSignIn_StoreFailure(t *testing.T) {
	rm := newFakeRepoManager()
	rm.u.getErr = common.Internal(errors.New("db down"))

	r := SignIn(newScope(rm, &fakeRequest{body: []byte(`{"username":"a","password":"b"}`)}, nil)).Await(context.Background())
	assert.ErrorIs(t, r.Failure(), common.ErrServerError)
}

func TestSignOut(t *testing.T) {
	sess := &fakeSession{token: "t", present: true}
	r := SignOut(newScope(newFakeRepoManager(), nil, sess)).Await(context.Background())
	require.True(t, r.IsOk())
	assert.True(t, sess.cleared)
	assert.False(t, sess.present)
}

func TestAuthorize(t *testing.T) {
	rm := newFakeRepoManager()
	signUp(t, rm, `{"username":"alice","password":"p@ss","email":"a@x.com"}`)

	cfg := newScope(rm, nil, nil).Config
	valid, err := auth.IssueToken(cfg.SecretKey, 1)
	require.NoError(t, err)
	ghost, err := auth.IssueToken(cfg.SecretKey, 77)
	require.NoError(t, err)
	forged, err := auth.IssueToken("other-secret", 1)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		r := Authorize(newScope(rm, nil, &fakeSession{token: valid, present: true})).Await(context.Background())
		require.True(t, r.IsOk(), "%v", r.Failure())
		assert.Equal(t, "alice", r.Value().User.UserName)
		assert.NotNil(t, r.Value().Scope)
	})

	tests := []struct {
		name string
		sess *fakeSession
		want *common.Error
	}{
		{"no cookie", &fakeSession{}, common.ErrNotAuthorised},
		{"forged token", &fakeSession{token: forged, present: true}, common.ErrInvalidAuthToken},
		{"garbage token", &fakeSession{token: "x.y.z", present: true}, common.ErrInvalidAuthToken},
		{"unknown user", &fakeSession{token: ghost, present: true}, common.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Authorize(newScope(rm, nil, tt.sess)).Await(context.Background())
			assert.ErrorIs(t, r.Failure(), tt.want)
		})
	}

	t.Run("inactive user", func(t *testing.T) {
		u := rm.u.byID[1]
		u.IsActive = false
		rm.u.byID[1] = u
		t.Cleanup(func() { u.IsActive = true; rm.u.byID[1] = u })

		r := Authorize(newScope(rm, nil, &fakeSession{token: valid, present: true})).Await(context.Background())
		assert.ErrorIs(t, r.Failure(), common.ErrNotAuthorised)
	})
}

func TestWithUser_SkipsHandlerWhenUnauthorised(t *testing.T) {
	called := false
	h := WithUser(func(sc *AuthorizedScope) *future.Future[models.Empty] {
		called = true
		return nil
	})

	r := h(newScope(newFakeRepoManager(), nil, nil)).Await(context.Background())
	assert.ErrorIs(t, r.Failure(), common.ErrNotAuthorised)
	assert.False(t, called)
}
