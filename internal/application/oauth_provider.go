package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"

	googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
	githubUserURL     = "https://api.github.com/user"
	githubEmailsURL   = "https://api.github.com/user/emails"
)

// OAuthProfile is the provider-reported identity returned from a callback.
type OAuthProfile struct {
	Provider    string         `json:"provider"`
	ID          string         `json:"id"`
	DisplayName string         `json:"displayName"`
	Username    string         `json:"username,omitempty"`
	Emails      []ProfileValue `json:"emails"`
	Photos      []ProfileValue `json:"photos"`
}

type ProfileValue struct {
	Value    string `json:"value"`
	Verified *bool  `json:"verified,omitempty"`
}

// OAuthProvider is one external identity provider. ProfileURL and EmailsURL
// point at the provider's API and can be swapped for a local server.
type OAuthProvider struct {
	Name       string
	Config     *oauth2.Config
	ProfileURL string
	EmailsURL  string

	fetch func(ctx context.Context, client *http.Client, p *OAuthProvider) (*OAuthProfile, error)
}

// Configured reports whether client credentials were supplied.
func (p *OAuthProvider) Configured() bool {
	return p.Config != nil && p.Config.ClientID != "" && p.Config.ClientSecret != ""
}

func NewGoogleProvider(clientID, clientSecret, redirectURL string) *OAuthProvider {
	return &OAuthProvider{
		Name: ProviderGoogle,
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"profile", "email"},
		},
		ProfileURL: googleUserInfoURL,
		fetch:      fetchGoogleProfile,
	}
}

func NewGitHubProvider(clientID, clientSecret, redirectURL string) *OAuthProvider {
	return &OAuthProvider{
		Name: ProviderGitHub,
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     github.Endpoint,
			Scopes:       []string{"user:email"},
		},
		ProfileURL: githubUserURL,
		EmailsURL:  githubEmailsURL,
		fetch:      fetchGitHubProfile,
	}
}

type googleUser struct {
	Sub           string `json:"sub"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Picture       string `json:"picture"`
}

func fetchGoogleProfile(ctx context.Context, client *http.Client, p *OAuthProvider) (*OAuthProfile, error) {
	var gu googleUser
	if err := getJSON(ctx, client, p.ProfileURL, &gu); err != nil {
		return nil, err
	}
	if gu.Sub == "" {
		return nil, errors.New("google profile has no subject")
	}
	prof := &OAuthProfile{
		Provider:    ProviderGoogle,
		ID:          gu.Sub,
		DisplayName: gu.Name,
		Emails:      []ProfileValue{},
		Photos:      []ProfileValue{},
	}
	if gu.Email != "" {
		verified := gu.EmailVerified
		prof.Emails = append(prof.Emails, ProfileValue{Value: gu.Email, Verified: &verified})
	}
	if gu.Picture != "" {
		prof.Photos = append(prof.Photos, ProfileValue{Value: gu.Picture})
	}
	return prof, nil
}

type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

func fetchGitHubProfile(ctx context.Context, client *http.Client, p *OAuthProvider) (*OAuthProfile, error) {
	var gu githubUser
	if err := getJSON(ctx, client, p.ProfileURL, &gu); err != nil {
		return nil, err
	}
	if gu.ID == 0 {
		return nil, errors.New("github profile has no id")
	}
	display := gu.Name
	if display == "" {
		display = gu.Login
	}
	prof := &OAuthProfile{
		Provider:    ProviderGitHub,
		ID:          strconv.FormatInt(gu.ID, 10),
		DisplayName: display,
		Username:    gu.Login,
		Emails:      []ProfileValue{},
		Photos:      []ProfileValue{},
	}

	// The public profile email is often empty; the emails endpoint is
	// authoritative when the user:email scope was granted.
	var emails []githubEmail
	if p.EmailsURL != "" {
		if err := getJSON(ctx, client, p.EmailsURL, &emails); err != nil {
			return nil, err
		}
	}
	for _, e := range emails {
		verified := e.Verified
		v := ProfileValue{Value: e.Email, Verified: &verified}
		if e.Primary {
			prof.Emails = append([]ProfileValue{v}, prof.Emails...)
		} else {
			prof.Emails = append(prof.Emails, v)
		}
	}
	if len(prof.Emails) == 0 && gu.Email != "" {
		prof.Emails = append(prof.Emails, ProfileValue{Value: gu.Email})
	}
	if gu.AvatarURL != "" {
		prof.Photos = append(prof.Photos, ProfileValue{Value: gu.AvatarURL})
	}
	return prof, nil
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
