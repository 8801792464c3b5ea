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

package httpclient

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// ErrNoCredentials is raised when neither a token nor a username is given.
var ErrNoCredentials = errors.New("no credentials")

// AuthOptions describe how to obtain a bearer token.
type AuthOptions struct {
	// Token is used verbatim when set.
	Token string
	// UAAURL is the UAA root, the token endpoint is /oauth/token below it.
	UAAURL string
	// ClientID is the UAA client used for the password grant, "cf" by default.
	ClientID string
	// Username and Password for the password grant.
	Username string
	Password string
	// SkipTLSValidation disables certificate checks, for test environments
	// with self signed certificates.
	SkipTLSValidation bool
	// Timeout applies to every request made with the returned client.
	Timeout time.Duration
}

func baseClient(options *AuthOptions) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert

	if options.SkipTLSValidation {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	return &http.Client{
		Transport: transport,
		Timeout:   options.Timeout,
	}
}

// NewAuthenticatedClient returns an http.Client that attaches a bearer token
// to every request, refreshing it through UAA as needed.
func NewAuthenticatedClient(ctx context.Context, options *AuthOptions) (*http.Client, error) {
	base := baseClient(options)

	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)

	var source oauth2.TokenSource

	switch {
	case options.Token != "":
		source = oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: strings.TrimPrefix(options.Token, "Bearer "),
			TokenType:   "Bearer",
		})
	case options.Username != "":
		clientID := options.ClientID
		if clientID == "" {
			clientID = "cf"
		}

		config := &oauth2.Config{
			ClientID: clientID,
			Endpoint: oauth2.Endpoint{
				TokenURL:  strings.TrimSuffix(options.UAAURL, "/") + "/oauth/token",
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		}

		token, err := config.PasswordCredentialsToken(ctx, options.Username, options.Password)
		if err != nil {
			return nil, fmt.Errorf("logging in as %s: %w", options.Username, err)
		}

		source = config.TokenSource(ctx, token)
	default:
		return nil, ErrNoCredentials
	}

	client := oauth2.NewClient(ctx, source)
	client.Timeout = options.Timeout

	return client, nil
}
