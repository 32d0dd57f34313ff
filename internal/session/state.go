// Package session is the view state machine. State is a value; Reduce applies
// one Action and returns the next State plus any remote call to perform.
package session

import (
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/luxe/internal/api"
	"github.com/alexisbeaulieu97/luxe/internal/theme"
	"github.com/alexisbeaulieu97/luxe/internal/upload"
)

const (
	msgNeedSearchImage = "Upload a photo to search"
	msgNeedTryonImages = "Upload both a person photo and a clothing photo"
	msgNeedClothing    = "Choose a clothing type"
)

// State is everything the screens render from.
type State struct {
	Active Section

	SearchImage  *upload.Image
	TryonClothes *upload.Image
	TryonPerson  *upload.Image
	ClothingType ClothingType

	SearchResults  []api.SearchResult
	SearchID       int64
	SearchImageURL string
	Tryon          *api.TryonResponse

	// Loading is true while any call is outstanding. Each action has its own
	// slot, so a pending search never blocks a try-on and vice versa.
	Loading       bool
	PendingSearch *Request
	PendingTryon  *Request
	Notice        *Notice

	Theme      theme.Config
	ProfileTab ProfileTab
}

// New returns the initial state: home screen, nothing uploaded.
func New(cfg theme.Config) State {
	return State{
		Active:        SectionHome,
		SearchResults: []api.SearchResult{},
		Theme:         cfg,
		ProfileTab:    TabHistory,
	}
}

// Slot returns the image held in slot, or nil.
func (s State) Slot(slot upload.Slot) *upload.Image {
	switch slot {
	case upload.SlotSearch:
		return s.SearchImage
	case upload.SlotClothes:
		return s.TryonClothes
	case upload.SlotPerson:
		return s.TryonPerson
	case upload.SlotLogo:
		return s.Theme.CustomLogo
	case upload.SlotBanner:
		return s.Theme.HeroBanner
	default:
		return nil
	}
}

// TryonResultURL is the composited image of the last try-on, if any.
func (s State) TryonResultURL() string {
	if s.Tryon == nil {
		return ""
	}
	return s.Tryon.ResultImageURL
}

// InFlight returns the outstanding call of kind, or nil.
func (s State) InFlight(kind RequestKind) *Request {
	switch kind {
	case RequestSearch:
		return s.PendingSearch
	case RequestTryon:
		return s.PendingTryon
	default:
		return nil
	}
}

// Lookup returns the outstanding call carrying token, or nil.
func (s State) Lookup(token string) *Request {
	if token == "" {
		return nil
	}
	for _, req := range []*Request{s.PendingSearch, s.PendingTryon} {
		if req != nil && req.Token == token {
			return req
		}
	}
	return nil
}

// Accepts reports whether a completion carrying token belongs to a call in flight.
func (s State) Accepts(token string) bool {
	return s.Lookup(token) != nil
}

// CanSubmitSearch gates the search control.
func CanSubmitSearch(s State) bool {
	return s.SearchImage != nil && s.PendingSearch == nil
}

// CanSubmitTryon gates the try-on control: both photos, a category and no try-on in flight.
func CanSubmitTryon(s State) bool {
	return s.TryonPerson != nil && s.TryonClothes != nil && s.ClothingType != ClothingNone && s.PendingTryon == nil
}

// Reduce applies a to s. The returned Request, when non-nil, must be executed
// by the caller and its outcome fed back as a *Succeeded or *Failed action.
func Reduce(s State, a Action) (State, *Request) {
	switch a := a.(type) {
	case Navigate:
		if isSection(a.To) {
			s.Active = a.To
		}
	case NewSearch:
		s.Active = SectionSearch
	case ImageEncoded:
		s = assign(s, a.Slot, &a.Image)
		if s.Notice != nil && s.Notice.Kind == NoticeDecode {
			s.Notice = nil
		}
	case ClearSlot:
		s = assign(s, a.Slot, nil)
	case ImageFailed:
		msg := "Could not read the image"
		if a.Err != nil {
			msg = a.Err.Error()
		}
		s.Notice = &Notice{Kind: NoticeDecode, Message: msg}
	case SelectClothingType:
		if ct, err := ParseClothingType(string(a.Type)); err == nil {
			s.ClothingType = ct
		} else {
			s.Notice = &Notice{Kind: NoticeValidation, Message: err.Error()}
		}
	case SubmitSearch:
		return submitSearch(s)
	case SubmitTryon:
		return submitTryon(s)
	case SearchSucceeded:
		origin, ok := settle(&s, RequestSearch, a.Token)
		if !ok {
			return s, nil
		}
		if origin != s.Active || a.Response == nil {
			return s, nil
		}
		s.SearchResults = append([]api.SearchResult{}, a.Response.Results...)
		s.SearchID = a.Response.SearchID
		s.SearchImageURL = a.Response.ImageURL
		s.Notice = nil
		s.Active = SectionResults
	case SearchFailed:
		if _, ok := settle(&s, RequestSearch, a.Token); ok {
			s.Notice = &Notice{Kind: NoticeRequest, Message: failureMessage(a.Err, api.SearchFallback)}
		}
	case TryonSucceeded:
		origin, ok := settle(&s, RequestTryon, a.Token)
		if !ok {
			return s, nil
		}
		if origin != s.Active || a.Response == nil {
			return s, nil
		}
		resp := *a.Response
		s.Tryon = &resp
		s.Notice = nil
	case TryonFailed:
		if _, ok := settle(&s, RequestTryon, a.Token); ok {
			s.Notice = &Notice{Kind: NoticeRequest, Message: failureMessage(a.Err, api.TryonFallback)}
		}
	case Invalid:
		s.Notice = &Notice{Kind: NoticeValidation, Message: a.Message}
	case DismissNotice:
		s.Notice = nil
	case SelectProfileTab:
		if a.Tab == TabHistory || a.Tab == TabSettings {
			s.ProfileTab = a.Tab
		}
	case ThemeChanged:
		s.Theme = a.Theme
	}
	return s, nil
}

func submitSearch(s State) (State, *Request) {
	if s.PendingSearch != nil {
		return s, nil
	}
	if s.SearchImage == nil {
		s.Notice = &Notice{Kind: NoticeValidation, Message: msgNeedSearchImage}
		return s, nil
	}
	req := &Request{
		Token:        uuid.NewString(),
		Kind:         RequestSearch,
		Origin:       s.Active,
		ImageDataURL: s.SearchImage.DataURL,
		ClothingHint: string(s.ClothingType),
	}
	return begin(s, req), req
}

func submitTryon(s State) (State, *Request) {
	if s.PendingTryon != nil {
		return s, nil
	}
	if s.TryonPerson == nil || s.TryonClothes == nil {
		s.Notice = &Notice{Kind: NoticeValidation, Message: msgNeedTryonImages}
		return s, nil
	}
	if s.ClothingType == ClothingNone {
		s.Notice = &Notice{Kind: NoticeValidation, Message: msgNeedClothing}
		return s, nil
	}
	req := &Request{
		Token:          uuid.NewString(),
		Kind:           RequestTryon,
		Origin:         s.Active,
		PersonDataURL:  s.TryonPerson.DataURL,
		ClothesDataURL: s.TryonClothes.DataURL,
	}
	return begin(s, req), req
}

func begin(s State, req *Request) State {
	pending := *req
	if req.Kind == RequestTryon {
		s.PendingTryon = &pending
	} else {
		s.PendingSearch = &pending
	}
	s.Loading = true
	s.Notice = nil
	return s
}

// settle clears the in-flight call of kind when token matches it and returns
// the section the call was started from.
func settle(s *State, kind RequestKind, token string) (Section, bool) {
	req := s.InFlight(kind)
	if req == nil || token == "" || req.Token != token {
		return "", false
	}
	if kind == RequestTryon {
		s.PendingTryon = nil
	} else {
		s.PendingSearch = nil
	}
	s.Loading = s.PendingSearch != nil || s.PendingTryon != nil
	return req.Origin, true
}

func assign(s State, slot upload.Slot, img *upload.Image) State {
	var cp *upload.Image
	if img != nil {
		v := *img
		cp = &v
	}
	switch slot {
	case upload.SlotSearch:
		s.SearchImage = cp
	case upload.SlotClothes:
		s.TryonClothes = cp
	case upload.SlotPerson:
		s.TryonPerson = cp
	case upload.SlotLogo:
		s.Theme = s.Theme.WithCustomLogo(cp)
	case upload.SlotBanner:
		s.Theme = s.Theme.WithHeroBanner(cp)
	}
	return s
}

func failureMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

func isSection(sec Section) bool {
	for _, candidate := range Sections {
		if candidate == sec {
			return true
		}
	}
	return false
}
