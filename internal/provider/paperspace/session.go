package paperspace

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"ritual/internal/provider"

	"go.uber.org/zap"
)

// Login constants captured from the web console; the private API rejects
// logins without them.
const (
	clientFingerprint    = "893bbf8dd5fd92f760c8590f202e56c7"
	requestValidationKey = "Nu/CfHRkn2A1YqTQHNfzrWgIJF+iV/0B+QfTXDcya2g="
)

// session manages the private-API token lifecycle: load persisted state,
// probe validity, refresh via login, persist the refreshed token. Refresh is
// serialized so concurrent callers seeing a stale token trigger one login.
type session struct {
	mu sync.Mutex

	apiKey    string
	email     string
	password  string
	authToken string
	namespace string

	public  *apiClient
	private *apiClient
	store   provider.CredentialStore
	logger  *zap.Logger
}

// headers returns the private-API header set for the current token.
func (s *session) headers() http.Header {
	h := http.Header{}
	h.Set("Accept", "*/*")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("Authorization", fmt.Sprintf("token %s_%s", s.namespace, s.authToken))
	h.Set("Content-Type", "application/json")
	h.Set("Origin", "https://console.paperspace.com")
	h.Set("Referer", "https://console.paperspace.com/")
	return h
}

// ensure makes the session usable for privileged calls: load persisted
// state when empty, probe it, and refresh when stale. Returns false when no
// valid session could be established; no error escapes this boundary.
func (s *session) ensure(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.authToken == "" || s.namespace == "" {
		s.loadFromStore(ctx)
	}
	if s.probe(ctx) {
		return true
	}
	return s.refresh(ctx)
}

// loadFromStore pulls previously persisted token and namespace.
func (s *session) loadFromStore(ctx context.Context) {
	credential, err := s.store.FindByType(ctx, provider.TypePaperspace)
	if err != nil {
		s.logger.Warn("failed to load paperspace credential", zap.Error(err))
		return
	}
	s.authToken = credential.AuthToken
	s.namespace = credential.Namespace
}

// probe checks token validity with a cheap read-only query. A 400/401 means
// the token is stale; any other outcome (success, network failure, 5xx) is
// treated as valid to avoid false negatives from transient failures.
func (s *session) probe(ctx context.Context) bool {
	err := s.private.do(ctx, http.MethodPost, "/graphql", nil, s.headers(), graphQLRequest{
		Query:         pendingTeamMembershipsQuery,
		OperationName: "PendingTeamMemberships",
		Variables:     map[string]any{"first": 10},
	}, nil)
	if err != nil {
		var re *requestError
		if errors.As(err, &re) && re.isInvalidAuth() {
			s.logger.Warn("paperspace private API unauthorized")
			return false
		}
	}
	return true
}

// refresh obtains a new token with the stored user credentials. Credentials
// are provided at construction when the user is updating them; otherwise
// they are read from the store.
func (s *session) refresh(ctx context.Context) bool {
	if s.email == "" || s.password == "" {
		credential, err := s.store.FindByType(ctx, provider.TypePaperspace)
		if err != nil || credential.Email == "" || credential.Password == "" {
			return false
		}
		s.email = credential.Email
		s.password = credential.Password
	}
	return s.login(ctx)
}

// login performs the private login flow, derives the working namespace and
// persists the refreshed session state immediately.
func (s *session) login(ctx context.Context) bool {
	var data loginData
	err := s.public.do(ctx, http.MethodPost, "/users/login", nil, s.headers(), map[string]any{
		"email":                     s.email,
		"password":                  s.password,
		"clientFingerprint":         clientFingerprint,
		"PS_REQUEST_VALIDATION_KEY": requestValidationKey,
	}, &data)
	if err != nil {
		s.logger.Error("paperspace login failed", zap.Error(err))
		return false
	}

	s.authToken = data.ID
	s.namespace = s.lookupNamespace(ctx, data.User)

	err = s.store.Upsert(ctx, provider.Credential{
		Type:      provider.TypePaperspace,
		Key:       s.apiKey,
		Email:     s.email,
		Password:  s.password,
		AuthToken: s.authToken,
		Namespace: s.namespace,
	})
	if err != nil {
		s.logger.Error("failed to persist paperspace session", zap.Error(err))
		return false
	}
	return true
}

// lookupNamespace resolves the namespace for private calls. Prefers a team
// the user belongs to other than their personal team, falling back to the
// personal team when it is the only membership.
func (s *session) lookupNamespace(ctx context.Context, user loginUser) string {
	var personalTeamID int64
	for _, team := range user.UserTeam {
		if team.IsUserTeam {
			personalTeamID = team.ID
			break
		}
	}

	var teamID int64
	if len(user.TeamMemberships) == 1 {
		teamID = user.TeamMemberships[0].TeamID
	} else {
		for _, membership := range user.TeamMemberships {
			if membership.TeamID != personalTeamID {
				teamID = membership.TeamID
				break
			}
		}
	}

	query := url.Values{}
	query.Set("access_token", s.authToken)
	var team showTeamData
	err := s.public.do(ctx, http.MethodGet, fmt.Sprintf("/teams/%d/showTeam", teamID), query, s.headers(), nil, &team)
	if err != nil {
		s.logger.Error("failed to resolve paperspace namespace", zap.Error(err))
		return ""
	}
	return team.Namespace
}
