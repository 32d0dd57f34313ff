package session

import (
	"github.com/alexisbeaulieu97/luxe/internal/api"
	"github.com/alexisbeaulieu97/luxe/internal/theme"
	"github.com/alexisbeaulieu97/luxe/internal/upload"
)

// Action is an input to Reduce.
type Action interface {
	action()
}

type Navigate struct{ To Section }

// ImageEncoded assigns an encoded image to a slot, replacing what was there.
type ImageEncoded struct {
	Slot  upload.Slot
	Image upload.Image
}

type ClearSlot struct{ Slot upload.Slot }

// ImageFailed reports a file that could not be read. The slot is untouched.
type ImageFailed struct {
	Slot upload.Slot
	Err  error
}

type SelectClothingType struct{ Type ClothingType }

type SubmitSearch struct{}

type SubmitTryon struct{}

type SearchSucceeded struct {
	Token    string
	Response *api.SearchResponse
}

type SearchFailed struct {
	Token string
	Err   error
}

type TryonSucceeded struct {
	Token    string
	Response *api.TryonResponse
}

type TryonFailed struct {
	Token string
	Err   error
}

type DismissNotice struct{}

type SelectProfileTab struct{ Tab ProfileTab }

// ThemeChanged replaces the whole theme.
type ThemeChanged struct{ Theme theme.Config }

// Invalid reports input rejected before it reached the state.
type Invalid struct{ Message string }

// NewSearch returns from the results screen to the search screen.
type NewSearch struct{}

func (Navigate) action()           {}
func (ImageEncoded) action()       {}
func (ClearSlot) action()          {}
func (ImageFailed) action()        {}
func (SelectClothingType) action() {}
func (SubmitSearch) action()       {}
func (SubmitTryon) action()        {}
func (SearchSucceeded) action()    {}
func (SearchFailed) action()       {}
func (TryonSucceeded) action()     {}
func (TryonFailed) action()        {}
func (DismissNotice) action()      {}
func (SelectProfileTab) action()   {}
func (ThemeChanged) action()       {}
func (NewSearch) action()          {}
func (Invalid) action()            {}
