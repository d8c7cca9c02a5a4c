package service

import "github.com/reshetovitsme/telegram-ad-broadcaster/internal/shared/locales"

// Menu returns the reply keyboard rows, labels resolved through catalog.
func Menu(catalog *locales.Catalog) [][]string {
	t := catalog.Text
	return [][]string{
		{t(locales.BtnAddChannel), t(locales.BtnRemoveChannel)},
		{t(locales.BtnAdText), t(locales.BtnAdMedia)},
		{t(locales.BtnPause), t(locales.BtnResume)},
		{t(locales.BtnDeleteAd), t(locales.BtnStatus)},
	}
}
