package quotecanvas

// DefaultCard returns the sample card a new session starts with.
func DefaultCard() Card {
	return Card{
		Content: QuoteContent{
			Book:     "Joe Dispenza · Deja de ser tú",
			Phrase:   "¿Sabías que tu mente no distingue entre lo que imaginas y lo real?",
			Username: "usermame",
		},
		Book: TextStyle{
			FontSize:   30,
			Color:      "#333333",
			FontFamily: FontTimesNewRoman,
		},
		Phrase: TextStyle{
			FontSize:   50,
			Color:      "#222222",
			FontFamily: FontEBGaramond,
		},
		Username: TextStyle{
			FontSize:   26,
			Color:      "#777777",
			FontFamily: FontCormorantSC,
		},
		Canvas: CanvasStyle{
			Background:       "#F8F6F2",
			BackgroundImage:  "",
			BackgroundEffect: EffectNone,
			ContainerStyle:   ContainerPortrait,
		},
	}
}
