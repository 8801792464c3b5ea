/*
Copyright 2026 the Platform Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package fake is an in-memory platform serving the console REST API under
// /rest and the part of the Cloud Foundry v2 API the harness uses under /v2,
// both over the same state. It backs the unit tests of the client packages.
package fake

import (
	"encoding/json"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/trustedanalytics/platform-tests/pkg/cf"
	"github.com/trustedanalytics/platform-tests/pkg/httpclient"
	"github.com/trustedanalytics/platform-tests/pkg/platform"
)

//nolint:gochecknoglobals
var validRoles = []string{"managers", "auditors", "billing_managers"}

type organization struct {
	name  string
	users []platform.User
}

type space struct {
	name    string
	orgGUID string
}

type instance struct {
	name      string
	spaceGUID string
	planGUID  string

	// userProvided instances have credentials instead of a plan.
	userProvided bool
	credentials  json.RawMessage
}

type app struct {
	platform.App
	spaceGUID string
	label     string
}

// Platform is the fake. Exported knobs may be set before the first request.
type Platform struct {
	lock sync.Mutex

	orgs      map[string]*organization
	spaces    map[string]*space
	services  []platform.Service
	instances map[string]*instance
	keys      map[string]*platform.ServiceKey
	apps      map[string]*app
	events    []json.RawMessage

	buildpacks []cf.Resource[cf.Buildpack]

	// GatewayTimeouts is how many service instance creates are answered
	// with a 504 after the instance was created anyway.
	GatewayTimeouts int

	// Down makes every request fail with a 503.
	Down bool

	requests []string
}

func New() *Platform {
	return &Platform{
		orgs:      map[string]*organization{},
		spaces:    map[string]*space{},
		instances: map[string]*instance{},
		keys:      map[string]*platform.ServiceKey{},
		apps:      map[string]*app{},
	}
}

// AddOrganization seeds an organization and returns its GUID.
func (p *Platform) AddOrganization(name string) string {
	p.lock.Lock()
	defer p.lock.Unlock()

	guid := uuid.NewString()
	p.orgs[guid] = &organization{name: name}

	return guid
}

// AddSpace seeds a space and returns its GUID.
func (p *Platform) AddSpace(orgGUID, name string) string {
	p.lock.Lock()
	defer p.lock.Unlock()

	guid := uuid.NewString()
	p.spaces[guid] = &space{name: name, orgGUID: orgGUID}

	return guid
}

// AddService seeds a marketplace offering with the named plans and returns
// the plan GUIDs in order.
func (p *Platform) AddService(label string, plans ...string) []string {
	p.lock.Lock()
	defer p.lock.Unlock()

	service := platform.Service{
		Metadata: cf.Metadata{GUID: uuid.NewString()},
		Entity: platform.ServiceEntity{
			Label:       label,
			Description: label + " service",
		},
	}

	guids := make([]string, len(plans))

	for i, name := range plans {
		guids[i] = uuid.NewString()

		service.Entity.ServicePlans = append(service.Entity.ServicePlans, platform.ServicePlan{
			Metadata: cf.Metadata{GUID: guids[i]},
			Entity:   platform.ServicePlanEntity{Name: name, Free: true},
		})
	}

	p.services = append(p.services, service)

	return guids
}

// AddApp seeds an application, bound to a service when label is not empty.
func (p *Platform) AddApp(spaceGUID, name, label string) string {
	p.lock.Lock()
	defer p.lock.Unlock()

	guid := uuid.NewString()
	p.apps[guid] = &app{
		App:       platform.App{GUID: guid, Name: name, State: "STARTED"},
		spaceGUID: spaceGUID,
		label:     label,
	}

	return guid
}

// AddBuildpack seeds a buildpack at the next position.
func (p *Platform) AddBuildpack(name string) {
	p.lock.Lock()
	defer p.lock.Unlock()

	guid := uuid.NewString()

	p.buildpacks = append(p.buildpacks, cf.Resource[cf.Buildpack]{
		Metadata: cf.Metadata{GUID: guid, URL: "/v2/buildpacks/" + guid},
		Entity: cf.Buildpack{
			Name:     name,
			Position: len(p.buildpacks) + 1,
			Enabled:  true,
			Filename: name + ".zip",
		},
	})
}

// AddEvent appends a latest event.
func (p *Platform) AddEvent(event map[string]any) {
	p.lock.Lock()
	defer p.lock.Unlock()

	data, _ := json.Marshal(event)
	p.events = append(p.events, data)
}

// OrganizationNames lists the organizations that currently exist.
func (p *Platform) OrganizationNames() []string {
	p.lock.Lock()
	defer p.lock.Unlock()

	names := make([]string, 0, len(p.orgs))

	for _, org := range p.orgs {
		names = append(names, org.name)
	}

	slices.Sort(names)

	return names
}

// InstanceNames lists the service instances of a space.
func (p *Platform) InstanceNames(spaceGUID string) []string {
	p.lock.Lock()
	defer p.lock.Unlock()

	var names []string

	for _, i := range p.instances {
		if i.spaceGUID == spaceGUID {
			names = append(names, i.name)
		}
	}

	slices.Sort(names)

	return names
}

// Requests counts the requests that matched the route pattern, for example
// "POST /rest/service_instances".
func (p *Platform) Requests(route string) int {
	p.lock.Lock()
	defer p.lock.Unlock()

	count := 0

	for _, r := range p.requests {
		if r == route {
			count++
		}
	}

	return count
}

func (p *Platform) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p.Down {
			writeError(w, http.StatusServiceUnavailable, "maintenance")
			return
		}

		next.ServeHTTP(w, r)

		p.lock.Lock()
		defer p.lock.Unlock()

		p.requests = append(p.requests, r.Method+" "+chi.RouteContext(r.Context()).RoutePattern())
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func decode(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}

// Handler returns the router serving both APIs.
func (p *Platform) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(p.record)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/rest", p.console)
	r.Route("/v2", p.cloudController)

	return r
}

//nolint:gocognit,cyclop,funlen
func (p *Platform) console(r chi.Router) {
	r.Get("/orgs", func(w http.ResponseWriter, _ *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		out := []platform.Organization{}

		for guid, org := range p.orgs {
			o := platform.Organization{GUID: guid, Name: org.name, Spaces: []platform.NamedReference{}}

			for sguid, s := range p.spaces {
				if s.orgGUID == guid {
					o.Spaces = append(o.Spaces, platform.NamedReference{GUID: sguid, Name: s.name})
				}
			}

			out = append(out, o)
		}

		writeJSON(w, http.StatusOK, out)
	})

	r.Post("/orgs", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Name string `json:"name"`
		}

		if !decode(w, r, &in) {
			return
		}

		p.lock.Lock()
		defer p.lock.Unlock()

		for _, org := range p.orgs {
			if org.name == in.Name {
				writeError(w, http.StatusConflict, "organization name already taken")
				return
			}
		}

		guid := uuid.NewString()
		p.orgs[guid] = &organization{name: in.Name}

		writeJSON(w, http.StatusOK, guid)
	})

	r.Put("/orgs/{guid}/name", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Name string `json:"name"`
		}

		if !decode(w, r, &in) {
			return
		}

		p.lock.Lock()
		defer p.lock.Unlock()

		org, ok := p.orgs[chi.URLParam(r, "guid")]
		if !ok {
			writeError(w, http.StatusNotFound, "organization not found")
			return
		}

		org.name = in.Name

		w.WriteHeader(http.StatusOK)
	})

	r.Delete("/orgs/{guid}", func(w http.ResponseWriter, r *http.Request) {
		if !p.deleteOrganization(chi.URLParam(r, "guid")) {
			writeError(w, http.StatusNotFound, "organization not found")
			return
		}

		w.WriteHeader(http.StatusOK)
	})

	r.Get("/orgs/{guid}/spaces", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, p.consoleSpaces(chi.URLParam(r, "guid")))
	})

	r.Get("/orgs/{guid}/users", func(w http.ResponseWriter, r *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		org, ok := p.orgs[chi.URLParam(r, "guid")]
		if !ok {
			writeError(w, http.StatusNotFound, "organization not found")
			return
		}

		writeJSON(w, http.StatusOK, append([]platform.User{}, org.users...))
	})

	r.Post("/orgs/{guid}/users", func(w http.ResponseWriter, r *http.Request) {
		var in platform.User

		if !decode(w, r, &in) {
			return
		}

		p.lock.Lock()
		defer p.lock.Unlock()

		org, ok := p.orgs[chi.URLParam(r, "guid")]
		if !ok {
			writeError(w, http.StatusNotFound, "organization not found")
			return
		}

		for _, role := range in.Roles {
			if !slices.Contains(validRoles, role) {
				writeError(w, http.StatusBadRequest, "invalid role "+role)
				return
			}
		}

		in.GUID = uuid.NewString()
		org.users = append(org.users, in)

		w.WriteHeader(http.StatusOK)
	})

	r.Put("/orgs/{guid}/users/{user}", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Roles []string `json:"roles"`
		}

		if !decode(w, r, &in) {
			return
		}

		p.lock.Lock()
		defer p.lock.Unlock()

		org, ok := p.orgs[chi.URLParam(r, "guid")]
		if !ok {
			writeError(w, http.StatusNotFound, "organization not found")
			return
		}

		for i := range org.users {
			if org.users[i].GUID == chi.URLParam(r, "user") {
				org.users[i].Roles = in.Roles

				w.WriteHeader(http.StatusOK)

				return
			}
		}

		writeError(w, http.StatusNotFound, "user not found")
	})

	r.Delete("/orgs/{guid}/users/{user}", func(w http.ResponseWriter, r *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		org, ok := p.orgs[chi.URLParam(r, "guid")]
		if !ok {
			writeError(w, http.StatusNotFound, "organization not found")
			return
		}

		org.users = slices.DeleteFunc(org.users, func(u platform.User) bool {
			return u.GUID == chi.URLParam(r, "user")
		})

		w.WriteHeader(http.StatusOK)
	})

	r.Get("/spaces", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, p.consoleSpaces(""))
	})

	r.Post("/spaces", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Name    string `json:"name"`
			OrgGUID string `json:"org_guid"`
		}

		if !decode(w, r, &in) {
			return
		}

		p.lock.Lock()
		defer p.lock.Unlock()

		if _, ok := p.orgs[in.OrgGUID]; !ok || in.Name == "" {
			writeError(w, http.StatusBadRequest, "bad request")
			return
		}

		for _, s := range p.spaces {
			if s.orgGUID == in.OrgGUID && s.name == in.Name {
				writeError(w, http.StatusBadRequest, "space name already taken")
				return
			}
		}

		p.spaces[uuid.NewString()] = &space{name: in.Name, orgGUID: in.OrgGUID}

		w.WriteHeader(http.StatusOK)
	})

	r.Delete("/spaces/{guid}", func(w http.ResponseWriter, r *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		if _, ok := p.spaces[chi.URLParam(r, "guid")]; !ok {
			writeError(w, http.StatusNotFound, "space not found")
			return
		}

		delete(p.spaces, chi.URLParam(r, "guid"))

		w.WriteHeader(http.StatusOK)
	})

	r.Get("/services", func(w http.ResponseWriter, _ *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		writeJSON(w, http.StatusOK, append([]platform.Service{}, p.services...))
	})

	r.Get("/services/{label}/service_plans", func(w http.ResponseWriter, r *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		for _, s := range p.services {
			if s.Entity.Label == chi.URLParam(r, "label") {
				writeJSON(w, http.StatusOK, s.Entity.ServicePlans)
				return
			}
		}

		writeError(w, http.StatusNotFound, "service not found")
	})

	r.Get("/service_instances", func(w http.ResponseWriter, r *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		spaceGUID := r.URL.Query().Get("space")
		label := r.URL.Query().Get("service")

		out := []platform.ServiceInstance{}

		for guid, i := range p.instances {
			if i.spaceGUID != spaceGUID {
				continue
			}

			rendered := p.renderInstance(guid, i)

			if label != "" && rendered.ServicePlan.Service.Label != label {
				continue
			}

			out = append(out, rendered)
		}

		writeJSON(w, http.StatusOK, out)
	})

	r.Post("/service_instances", func(w http.ResponseWriter, r *http.Request) {
		var in platform.CreateServiceInstanceRequest

		if !decode(w, r, &in) {
			return
		}

		p.lock.Lock()
		defer p.lock.Unlock()

		if _, _, ok := p.plan(in.ServicePlanGUID); !ok || in.Name == "" {
			writeError(w, http.StatusBadRequest, "bad request")
			return
		}

		for _, i := range p.instances {
			if i.spaceGUID == in.SpaceGUID && i.name == in.Name {
				writeError(w, http.StatusConflict, "service instance name "+in.Name+" already taken")
				return
			}
		}

		guid := uuid.NewString()
		p.instances[guid] = &instance{name: in.Name, spaceGUID: in.SpaceGUID, planGUID: in.ServicePlanGUID}

		if p.GatewayTimeouts > 0 {
			p.GatewayTimeouts--

			w.WriteHeader(http.StatusGatewayTimeout)
			_, _ = w.Write([]byte("<html><body><h1>504 " + httpclient.GatewayTimeoutMessage + "</h1></body></html>"))

			return
		}

		created := platform.CreatedServiceInstance{Metadata: cf.Metadata{GUID: guid}}
		created.Entity.Name = in.Name

		writeJSON(w, http.StatusCreated, created)
	})

	r.Delete("/service_instances/{guid}", func(w http.ResponseWriter, r *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		guid := chi.URLParam(r, "guid")

		if _, ok := p.instances[guid]; !ok {
			writeError(w, http.StatusNotFound, "service instance not found")
			return
		}

		delete(p.instances, guid)

		for kguid, k := range p.keys {
			if k.ServiceInstanceGUID == guid {
				delete(p.keys, kguid)
			}
		}

		w.WriteHeader(http.StatusOK)
	})

	r.Get("/service_instances/summary", func(w http.ResponseWriter, r *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		spaceGUID := r.URL.Query().Get("space")
		withKeys := r.URL.Query().Get("service_keys") == "true"

		out := []platform.ServiceSummary{}

		for _, s := range p.services {
			summary := platform.ServiceSummary{Label: s.Entity.Label}

			for guid, i := range p.instances {
				_, service, _ := p.plan(i.planGUID)
				if i.spaceGUID != spaceGUID || service.Entity.Label != s.Entity.Label {
					continue
				}

				entry := platform.SummaryInstance{GUID: guid, Name: i.name}

				if withKeys {
					for _, k := range p.keys {
						if k.ServiceInstanceGUID == guid {
							entry.ServiceKeys = append(entry.ServiceKeys, *k)
						}
					}
				}

				summary.Instances = append(summary.Instances, entry)
			}

			out = append(out, summary)
		}

		writeJSON(w, http.StatusOK, out)
	})

	r.Post("/service_keys", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Name                string `json:"name"`
			ServiceInstanceGUID string `json:"service_instance_guid"`
		}

		if !decode(w, r, &in) {
			return
		}

		p.lock.Lock()
		defer p.lock.Unlock()

		if _, ok := p.instances[in.ServiceInstanceGUID]; !ok {
			writeError(w, http.StatusBadRequest, "unknown service instance")
			return
		}

		key := &platform.ServiceKey{
			GUID:                uuid.NewString(),
			Name:                in.Name,
			Credentials:         json.RawMessage(`{"password":"` + uuid.NewString() + `"}`),
			ServiceInstanceGUID: in.ServiceInstanceGUID,
		}

		p.keys[key.GUID] = key

		writeJSON(w, http.StatusCreated, key)
	})

	r.Delete("/service_keys/{guid}", func(w http.ResponseWriter, r *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		if _, ok := p.keys[chi.URLParam(r, "guid")]; !ok {
			writeError(w, http.StatusNotFound, "service key not found")
			return
		}

		delete(p.keys, chi.URLParam(r, "guid"))

		w.WriteHeader(http.StatusOK)
	})

	r.Get("/apps", func(w http.ResponseWriter, r *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		spaceGUID := r.URL.Query().Get("space")
		label := r.URL.Query().Get("service_label")

		out := []platform.App{}

		for _, a := range p.apps {
			if a.spaceGUID == spaceGUID && (label == "" || a.label == label) {
				out = append(out, a.App)
			}
		}

		writeJSON(w, http.StatusOK, out)
	})

	r.Delete("/apps/{guid}", func(w http.ResponseWriter, r *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		if _, ok := p.apps[chi.URLParam(r, "guid")]; !ok {
			writeError(w, http.StatusNotFound, "application not found")
			return
		}

		delete(p.apps, chi.URLParam(r, "guid"))

		w.WriteHeader(http.StatusOK)
	})

	r.Get("/les/events", func(w http.ResponseWriter, _ *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		events := make([]json.RawMessage, 0, len(p.events))

		for i := len(p.events) - 1; i >= 0; i-- {
			events = append(events, p.events[i])
		}

		writeJSON(w, http.StatusOK, platform.Events{Total: len(events), Events: events})
	})
}

// nameFilter extracts X from a v2 "q=name:X" filter.
func nameFilter(r *http.Request) (string, bool) {
	for _, q := range r.URL.Query()["q"] {
		if name, ok := strings.CutPrefix(q, "name:"); ok {
			return name, true
		}
	}

	return "", false
}

func page[E any](resources []cf.Resource[E]) cf.Page[E] {
	if resources == nil {
		resources = []cf.Resource[E]{}
	}

	return cf.Page[E]{
		TotalResults: len(resources),
		TotalPages:   1,
		Resources:    resources,
	}
}

func (p *Platform) cloudController(r chi.Router) {
	r.Get("/info", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, cf.Info{Name: "fake", APIVersion: "2.65.0"})
	})

	r.Get("/organizations", func(w http.ResponseWriter, r *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		name, filtered := nameFilter(r)

		var out []cf.Resource[cf.Organization]

		for guid, org := range p.orgs {
			if filtered && org.name != name {
				continue
			}

			out = append(out, cf.Resource[cf.Organization]{
				Metadata: cf.Metadata{GUID: guid},
				Entity:   cf.Organization{Name: org.name, Status: "active"},
			})
		}

		writeJSON(w, http.StatusOK, page(out))
	})

	r.Delete("/organizations/{guid}", func(w http.ResponseWriter, r *http.Request) {
		if !p.deleteOrganization(chi.URLParam(r, "guid")) {
			writeError(w, http.StatusNotFound, "organization not found")
			return
		}

		guid := uuid.NewString()

		writeJSON(w, http.StatusAccepted, cf.Resource[cf.Job]{
			Metadata: cf.Metadata{GUID: guid},
			Entity:   cf.Job{GUID: guid, Status: "queued"},
		})
	})

	r.Get("/spaces", func(w http.ResponseWriter, r *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		name, filtered := nameFilter(r)

		orgGUID := ""

		for _, q := range r.URL.Query()["q"] {
			if guid, ok := strings.CutPrefix(q, "organization_guid:"); ok {
				orgGUID = guid
			}
		}

		var out []cf.Resource[cf.Space]

		for guid, s := range p.spaces {
			if (filtered && s.name != name) || (orgGUID != "" && s.orgGUID != orgGUID) {
				continue
			}

			out = append(out, cf.Resource[cf.Space]{
				Metadata: cf.Metadata{GUID: guid},
				Entity:   cf.Space{Name: s.name, OrganizationGUID: s.orgGUID},
			})
		}

		writeJSON(w, http.StatusOK, page(out))
	})

	r.Get("/spaces/{guid}/services", func(w http.ResponseWriter, _ *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		var out []cf.Resource[cf.Service]

		for _, s := range p.services {
			out = append(out, cf.Resource[cf.Service]{
				Metadata: s.Metadata,
				Entity:   cf.Service{Label: s.Entity.Label, Description: s.Entity.Description, Active: true},
			})
		}

		writeJSON(w, http.StatusOK, page(out))
	})

	r.Get("/services/{guid}/service_plans", func(w http.ResponseWriter, r *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		var out []cf.Resource[cf.ServicePlan]

		for _, s := range p.services {
			if s.Metadata.GUID != chi.URLParam(r, "guid") {
				continue
			}

			for _, plan := range s.Entity.ServicePlans {
				out = append(out, cf.Resource[cf.ServicePlan]{
					Metadata: plan.Metadata,
					Entity:   cf.ServicePlan{Name: plan.Entity.Name, Free: plan.Entity.Free, ServiceGUID: s.Metadata.GUID},
				})
			}
		}

		writeJSON(w, http.StatusOK, page(out))
	})

	r.Get("/buildpacks", func(w http.ResponseWriter, _ *http.Request) {
		p.lock.Lock()
		defer p.lock.Unlock()

		writeJSON(w, http.StatusOK, page(append([]cf.Resource[cf.Buildpack]{}, p.buildpacks...)))
	})

	r.Get("/service_instances", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, page(p.cfInstances(r, false)))
	})

	r.Post("/service_instances", func(w http.ResponseWriter, r *http.Request) {
		var in cf.ServiceInstance

		if !decode(w, r, &in) {
			return
		}

		p.lock.Lock()
		defer p.lock.Unlock()

		if _, _, ok := p.plan(in.ServicePlanGUID); !ok || r.URL.Query().Get("accepts_incomplete") != "true" {
			writeError(w, http.StatusBadRequest, "bad request")
			return
		}

		guid := uuid.NewString()
		p.instances[guid] = &instance{name: in.Name, spaceGUID: in.SpaceGUID, planGUID: in.ServicePlanGUID}

		writeJSON(w, http.StatusAccepted, cf.Resource[cf.ServiceInstance]{Metadata: cf.Metadata{GUID: guid}, Entity: in})
	})

	r.Get("/user_provided_service_instances", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, page(p.cfInstances(r, true)))
	})

	r.Post("/user_provided_service_instances", func(w http.ResponseWriter, r *http.Request) {
		var in cf.ServiceInstance

		if !decode(w, r, &in) {
			return
		}

		p.lock.Lock()
		defer p.lock.Unlock()

		guid := uuid.NewString()
		p.instances[guid] = &instance{name: in.Name, spaceGUID: in.SpaceGUID, userProvided: true, credentials: in.Credentials}

		in.Type = "user_provided_service_instance"

		writeJSON(w, http.StatusCreated, cf.Resource[cf.ServiceInstance]{Metadata: cf.Metadata{GUID: guid}, Entity: in})
	})

	r.Get("/jobs/{guid}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cf.Resource[cf.Job]{
			Metadata: cf.Metadata{GUID: chi.URLParam(r, "guid")},
			Entity:   cf.Job{GUID: chi.URLParam(r, "guid"), Status: cf.JobStatusFinished},
		})
	})
}

func (p *Platform) cfInstances(r *http.Request, userProvided bool) []cf.Resource[cf.ServiceInstance] {
	p.lock.Lock()
	defer p.lock.Unlock()

	orgGUID := ""

	for _, q := range r.URL.Query()["q"] {
		if guid, ok := strings.CutPrefix(q, "organization_guid:"); ok {
			orgGUID = guid
		}
	}

	var out []cf.Resource[cf.ServiceInstance]

	for guid, i := range p.instances {
		if i.userProvided != userProvided {
			continue
		}

		if s, ok := p.spaces[i.spaceGUID]; orgGUID != "" && (!ok || s.orgGUID != orgGUID) {
			continue
		}

		out = append(out, cf.Resource[cf.ServiceInstance]{
			Metadata: cf.Metadata{GUID: guid},
			Entity: cf.ServiceInstance{
				Name:            i.name,
				SpaceGUID:       i.spaceGUID,
				ServicePlanGUID: i.planGUID,
				Credentials:     i.credentials,
			},
		})
	}

	return out
}

func (p *Platform) deleteOrganization(guid string) bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	if _, ok := p.orgs[guid]; !ok {
		return false
	}

	delete(p.orgs, guid)

	for sguid, s := range p.spaces {
		if s.orgGUID != guid {
			continue
		}

		delete(p.spaces, sguid)

		for iguid, i := range p.instances {
			if i.spaceGUID == sguid {
				delete(p.instances, iguid)
			}
		}
	}

	return true
}

func (p *Platform) consoleSpaces(orgGUID string) []platform.Space {
	p.lock.Lock()
	defer p.lock.Unlock()

	out := []platform.Space{}

	for guid, s := range p.spaces {
		if orgGUID != "" && s.orgGUID != orgGUID {
			continue
		}

		out = append(out, platform.Space{
			Metadata: cf.Metadata{GUID: guid},
			Entity:   platform.SpaceEntity{Name: s.name, OrganizationGUID: s.orgGUID},
		})
	}

	return out
}

// plan must be called with the lock held.
func (p *Platform) plan(planGUID string) (platform.ServicePlan, platform.Service, bool) {
	for _, s := range p.services {
		for _, plan := range s.Entity.ServicePlans {
			if plan.Metadata.GUID == planGUID {
				return plan, s, true
			}
		}
	}

	return platform.ServicePlan{}, platform.Service{}, false
}

// renderInstance must be called with the lock held.
func (p *Platform) renderInstance(guid string, i *instance) platform.ServiceInstance {
	plan, service, _ := p.plan(i.planGUID)

	out := platform.ServiceInstance{
		GUID:      guid,
		Name:      i.name,
		BoundApps: []platform.NamedReference{},
	}

	out.ServicePlan = &platform.InstancePlan{Name: plan.Entity.Name}
	out.ServicePlan.Service.Label = service.Entity.Label

	for aguid, a := range p.apps {
		if a.spaceGUID == i.spaceGUID && a.label == service.Entity.Label {
			out.BoundApps = append(out.BoundApps, platform.NamedReference{GUID: aguid, Name: a.Name})
		}
	}

	return out
}
