package identity

import (
	"encoding/json"
	"fmt"
)

// Google maps an OpenID Connect userinfo document.
type Google struct{}

type googleUser struct {
	Sub        string `json:"sub"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

func (Google) Name() string { return "google" }

func (g Google) Map(raw []byte) (External, error) {
	var u googleUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return External{}, fmt.Errorf("google payload: %w", err)
	}
	return finish(External{
		Provider:    g.Name(),
		ProviderID:  u.Sub,
		Email:       u.Email,
		FirstName:   u.GivenName,
		LastName:    u.FamilyName,
		DisplayName: u.Name,
		AvatarURL:   u.Picture,
	})
}

// Facebook maps a Graph API /me document. The name may arrive flat
// (first_name/last_name) or nested, and the email either flat or as emails[0].value.
type Facebook struct{}

type facebookUser struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Emails    []facebookValue `json:"emails"`
	Name      json.RawMessage `json:"name"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Picture   struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
	Photos []facebookValue `json:"photos"`
}

type facebookValue struct {
	Value string `json:"value"`
}

type facebookName struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
}

func (Facebook) Name() string { return "facebook" }

func (f Facebook) Map(raw []byte) (External, error) {
	var u facebookUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return External{}, fmt.Errorf("facebook payload: %w", err)
	}

	ext := External{
		Provider:   f.Name(),
		ProviderID: u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		AvatarURL:  u.Picture.Data.URL,
	}
	if ext.Email == "" && len(u.Emails) > 0 {
		ext.Email = u.Emails[0].Value
	}
	if ext.AvatarURL == "" && len(u.Photos) > 0 {
		ext.AvatarURL = u.Photos[0].Value
	}

	// name is either a display string or an object with the parts
	if len(u.Name) > 0 {
		var s string
		var n facebookName
		switch {
		case json.Unmarshal(u.Name, &s) == nil:
			ext.DisplayName = s
		case json.Unmarshal(u.Name, &n) == nil:
			if ext.FirstName == "" {
				ext.FirstName = firstNonEmpty(n.FirstName, n.GivenName)
			}
			if ext.LastName == "" {
				ext.LastName = firstNonEmpty(n.LastName, n.FamilyName)
			}
		}
	}
	return finish(ext)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
