package locales

// Menu button labels. The router matches incoming text against these exactly.
const (
	BtnAddChannel    = "BtnAddChannel"
	BtnRemoveChannel = "BtnRemoveChannel"
	BtnAdText        = "BtnAdText"
	BtnAdMedia       = "BtnAdMedia"
	BtnPause         = "BtnPause"
	BtnResume        = "BtnResume"
	BtnDeleteAd      = "BtnDeleteAd"
	BtnStatus        = "BtnStatus"
)

// Replies.
const (
	MsgWelcome          = "MsgWelcome"
	MsgNotAdmin         = "MsgNotAdmin"
	MsgAskChannel       = "MsgAskChannel"
	MsgChannelAdded     = "MsgChannelAdded"
	MsgAskRemoveChannel = "MsgAskRemoveChannel"
	MsgChannelRemoved   = "MsgChannelRemoved"
	MsgChannelNotFound  = "MsgChannelNotFound"
	MsgAskAdText        = "MsgAskAdText"
	MsgAdSaved          = "MsgAdSaved"
	MsgAskAdMedia       = "MsgAskAdMedia"
	MsgMediaSaved       = "MsgMediaSaved"
	MsgAdDeleted        = "MsgAdDeleted"
	MsgPaused           = "MsgPaused"
	MsgResumed          = "MsgResumed"
	MsgSaveFailed       = "MsgSaveFailed"
	MsgStatus           = "MsgStatus"
	MsgStateRunning     = "MsgStateRunning"
	MsgStatePaused      = "MsgStatePaused"
	MsgNoChannels       = "MsgNoChannels"
	MsgAdNone           = "MsgAdNone"
	MsgAdText           = "MsgAdText"
	MsgAdPhoto          = "MsgAdPhoto"
	MsgAdVideo          = "MsgAdVideo"

	MsgAdSavedInvalidMarkup = "MsgAdSavedInvalidMarkup"
	MsgAdInvalidMarkup      = "MsgAdInvalidMarkup"
)
