package paperspace

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ritual/internal/provider"
	"ritual/internal/tgi"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	publicBaseURL  = "https://api.paperspace.io"
	privateBaseURL = "https://api.paperspace.com"
)

// Adapter implements the provider contract against the Paperspace public
// REST API and the private GraphQL API behind the web console.
type Adapter struct {
	apiKey  string
	public  *apiClient
	private *apiClient
	session *session
	logger  *zap.Logger
}

type Option func(*Adapter)

// WithBaseURLs points the adapter at alternative API endpoints.
func WithBaseURLs(public, private string) Option {
	return func(a *Adapter) {
		a.public.baseURL = public
		a.private.baseURL = private
	}
}

// WithHTTPClient replaces the underlying HTTP client for both endpoints.
func WithHTTPClient(client *http.Client) Option {
	return func(a *Adapter) {
		a.public.http = client
		a.private.http = client
	}
}

func New(credential provider.Credential, store provider.CredentialStore, logger *zap.Logger, opts ...Option) *Adapter {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	a := &Adapter{
		apiKey:  credential.Key,
		public:  &apiClient{http: httpClient, baseURL: publicBaseURL},
		private: &apiClient{http: httpClient, baseURL: privateBaseURL},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.session = &session{
		apiKey:    credential.Key,
		email:     credential.Email,
		password:  credential.Password,
		authToken: credential.AuthToken,
		namespace: credential.Namespace,
		public:    a.public,
		private:   a.private,
		store:     store,
		logger:    logger,
	}
	return a
}

func (a *Adapter) Type() provider.Type {
	return provider.TypePaperspace
}

// publicHeaders carries the API key the public endpoints expect.
func (a *Adapter) publicHeaders() http.Header {
	h := http.Header{}
	h.Set("X-Api-Key", a.apiKey)
	return h
}

// IsAuth verifies both credential halves: the API key against the public
// API and the console session against the private API.
func (a *Adapter) IsAuth(ctx context.Context) bool {
	return a.isPublicAuth(ctx) && a.session.ensure(ctx)
}

// isPublicAuth probes the API key with a minimal list call. Only an
// explicit rejection counts as invalid; transient failures pass so a flaky
// network does not lock users out.
func (a *Adapter) isPublicAuth(ctx context.Context) bool {
	query := url.Values{}
	query.Set("limit", "1")
	err := a.public.do(ctx, http.MethodGet, "/machines/getMachines", query, a.publicHeaders(), nil, nil)
	if err != nil {
		var re *requestError
		if errors.As(err, &re) && re.isInvalidAuth() {
			return false
		}
	}
	return true
}

// GetConfigurations assembles the purchasable configuration catalog from
// the private GraphQL catalog queries and the public template list. The
// three fetches are independent and run concurrently.
func (a *Adapter) GetConfigurations(ctx context.Context) ([]provider.Configuration, error) {
	const op = "Paperspace.GetConfigurations"

	if !a.session.ensure(ctx) {
		return nil, provider.NewError(provider.KindAuthentication, op, "Authentication failed.", nil)
	}

	var (
		osData       operatingSystemsData
		ratesData    storageRatesData
		templateList []osTemplate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.private.do(gctx, http.MethodPost, "/graphql", nil, a.session.headers(), graphQLRequest{
			Query:         operatingSystemsQuery,
			OperationName: "OperatingSystems",
			Variables:     map[string]any{"osFirst": 40, "vmTypeFirst": 100},
		}, &osData)
	})
	g.Go(func() error {
		return a.private.do(gctx, http.MethodPost, "/graphql", nil, a.session.headers(), graphQLRequest{
			Query:         storageRatesQuery,
			OperationName: "StorageRates",
			Variables:     map[string]any{"first": 20},
		}, &ratesData)
	})
	g.Go(func() error {
		return a.public.do(gctx, http.MethodGet, "/templates/getTemplates", nil, a.publicHeaders(), nil, &templateList)
	})
	if err := g.Wait(); err != nil {
		return nil, provider.NewError(provider.KindUpstream, op, "Error collecting configurations.", err)
	}

	windows, other := transformTemplates(templateList)
	storageCosts := transformStorageRates(ratesData.Data.StorageRates.Nodes)
	return transformConfigurations(osData, windows, other, storageCosts), nil
}

// GetServer collects one server with pricing. Pricing lives behind an
// internal machine id that only the list endpoint exposes, so three calls
// are required.
func (a *Adapter) GetServer(ctx context.Context, id string) (provider.Server, error) {
	const op = "Paperspace.GetServer"

	if id == "" {
		return provider.Server{}, provider.NewError(provider.KindValidation, op, "No server id provided.", nil)
	}

	fail := func(err error) (provider.Server, error) {
		message := requestMessage(err)
		if message == "" {
			message = fmt.Sprintf("Error collecting server: %s", id)
		}
		return provider.Server{}, provider.NewError(provider.KindUpstream, op, message, err)
	}

	query := url.Values{}
	query.Set("machineId", id)

	var m machine
	if err := a.public.do(ctx, http.MethodGet, "/machines/getMachinePublic", query, a.publicHeaders(), nil, &m); err != nil {
		return fail(err)
	}
	server := transformServer(m)

	var list []machine
	if err := a.public.do(ctx, http.MethodGet, "/machines/getMachines", query, a.publicHeaders(), nil, &list); err != nil {
		return fail(err)
	}
	internalID := ""
	for _, item := range list {
		if item.ID == id {
			internalID = item.InternalID.String()
			break
		}
	}

	detailQuery := url.Values{}
	detailQuery.Set("machineId", internalID)
	var detail machineDetail
	if err := a.public.do(ctx, http.MethodGet, "/machines/getMachine", detailQuery, a.publicHeaders(), nil, &detail); err != nil {
		return fail(err)
	}
	hourly, _ := detail.UsageRate.RateHourly.Float64()
	monthly, _ := detail.UsageRate.RateMonthly.Float64()
	storage, _ := detail.StorageRate.Rate.Float64()
	server.Price = provider.ConfigurationPrice{
		Hourly:  hourly,
		Monthly: monthly + storage,
	}
	return server, nil
}

func (a *Adapter) GetAllServers(ctx context.Context) ([]provider.Server, error) {
	const op = "Paperspace.GetAllServers"

	var list []machine
	if err := a.public.do(ctx, http.MethodGet, "/machines/getMachines", nil, a.publicHeaders(), nil, &list); err != nil {
		message := requestMessage(err)
		if message == "" {
			message = "Error collecting all servers."
		}
		return nil, provider.NewError(provider.KindUpstream, op, message, err)
	}
	servers := make([]provider.Server, 0, len(list))
	for _, m := range list {
		servers = append(servers, transformServer(m))
	}
	return servers, nil
}

// CreateServer provisions a machine in two phases: register the startup
// script, then create the machine referencing it. The script is rendered
// first so missing secrets fail before anything is created remotely.
func (a *Adapter) CreateServer(ctx context.Context, serverConfig provider.ServerConfig, runConfig provider.RunConfig) (string, error) {
	const op = "Paperspace.CreateServer"

	script, err := tgi.FormatScript(tgi.ScriptParams{
		MachineType: serverConfig.Instance,
		NumShard:    parseGPUCount(serverConfig.Instance),
		RunConfig:   runConfig,
	})
	if err != nil {
		return "", err
	}

	var createdScript createdResource
	err = a.public.do(ctx, http.MethodPost, "/scripts/createScript", nil, a.publicHeaders(), map[string]any{
		"scriptName": fmt.Sprintf("startup_script_%d", time.Now().UnixMilli()),
		"scriptText": script,
		"runOnce":    false,
	}, &createdScript)
	if err != nil {
		return "", provider.NewError(provider.KindUpstream, op, "Error creating startup script.", err)
	}

	var createdMachine createdResource
	err = a.public.do(ctx, http.MethodPost, "/machines/createSingleMachinePublic", nil, a.publicHeaders(), map[string]any{
		"machineType":    serverConfig.Instance,
		"region":         serverConfig.Region,
		"machineName":    serverConfig.Name,
		"templateId":     serverConfig.Os,
		"size":           serverConfig.Size,
		"scriptId":       createdScript.ID,
		"billingType":    "hourly",
		"assignPublicIp": true,
	}, &createdMachine)
	if err != nil {
		message := requestMessage(err)
		if message == "" {
			message = "Error creating server - Are you authorized to create this instance?"
		}
		return "", provider.NewError(provider.KindUpstream, op, message, err)
	}
	return createdMachine.ID, nil
}

func (a *Adapter) StartServer(ctx context.Context, id string) error {
	return a.machineAction(ctx, "Paperspace.StartServer", id, "start", "starting")
}

func (a *Adapter) StopServer(ctx context.Context, id string) error {
	return a.machineAction(ctx, "Paperspace.StopServer", id, "stop", "stopping")
}

func (a *Adapter) DeleteServer(ctx context.Context, id string) error {
	return a.machineAction(ctx, "Paperspace.DeleteServer", id, "destroyMachine", "deleting")
}

func (a *Adapter) machineAction(ctx context.Context, op, id, action, verb string) error {
	path := fmt.Sprintf("/machines/%s/%s", id, action)
	if err := a.public.do(ctx, http.MethodPost, path, nil, a.publicHeaders(), nil, nil); err != nil {
		message := requestMessage(err)
		if message == "" {
			message = fmt.Sprintf("Error %s server %s", verb, id)
		}
		return provider.NewError(provider.KindUpstream, op, message, err)
	}
	return nil
}
