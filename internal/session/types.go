package session

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/luxe/pkg/errors"
)

// Section identifies the active screen. Exactly one is active at a time.
type Section string

const (
	SectionHome    Section = "home"
	SectionSearch  Section = "search"
	SectionTryon   Section = "tryon"
	SectionResults Section = "results"
	SectionProfile Section = "profile"
)

// Sections lists every screen in navigation order.
var Sections = []Section{SectionHome, SectionSearch, SectionTryon, SectionResults, SectionProfile}

// ParseSection validates a section name.
func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if string(sec) == strings.ToLower(strings.TrimSpace(s)) {
			return sec, nil
		}
	}
	return "", apperrors.NewValidationError("section", fmt.Sprintf("unknown section %q", s), nil)
}

// Title is the navigation label of the section.
func (s Section) Title() string {
	switch s {
	case SectionHome:
		return "Home"
	case SectionSearch:
		return "Search"
	case SectionTryon:
		return "Try-on"
	case SectionResults:
		return "Results"
	case SectionProfile:
		return "Profile"
	default:
		return string(s)
	}
}

// ClothingType is the garment category chosen for try-on. The zero value
// means nothing is selected.
type ClothingType string

const (
	ClothingNone   ClothingType = ""
	ClothingHat    ClothingType = "hat"
	ClothingTop    ClothingType = "top"
	ClothingBottom ClothingType = "bottom"
	ClothingShoes  ClothingType = "shoes"
)

// ClothingTypes lists the selectable categories.
var ClothingTypes = []ClothingType{ClothingHat, ClothingTop, ClothingBottom, ClothingShoes}

// ParseClothingType validates a category; an empty string clears the choice.
func ParseClothingType(s string) (ClothingType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ClothingNone, nil
	}
	for _, ct := range ClothingTypes {
		if string(ct) == s {
			return ct, nil
		}
	}
	return "", apperrors.NewValidationError("clothing_type", fmt.Sprintf("%q is not one of hat, top, bottom, shoes", s), nil)
}

func (c ClothingType) Label() string {
	switch c {
	case ClothingHat:
		return "Hat"
	case ClothingTop:
		return "Top"
	case ClothingBottom:
		return "Bottom"
	case ClothingShoes:
		return "Shoes"
	default:
		return "Choose type"
	}
}

// ProfileTab selects the profile sub-view.
type ProfileTab string

const (
	TabHistory  ProfileTab = "history"
	TabSettings ProfileTab = "settings"
)

// NoticeKind classifies a user-visible message.
type NoticeKind string

const (
	NoticeValidation NoticeKind = "validation"
	NoticeRequest    NoticeKind = "request"
	NoticeDecode     NoticeKind = "decode"
)

// Notice is a transient message shown until dismissed or replaced.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// RequestKind names the remote call a Request asks for.
type RequestKind string

const (
	RequestSearch RequestKind = "search"
	RequestTryon  RequestKind = "tryon"
)

// Request is the effect emitted by a submit. The caller performs it and
// reports back with the same Token.
type Request struct {
	Token  string
	Kind   RequestKind
	Origin Section

	ImageDataURL string
	ClothingHint string

	PersonDataURL  string
	ClothesDataURL string
}
