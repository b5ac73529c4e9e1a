package naming

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saleklar/spine-sorter/internal/grammar"
)

func TestDestination(t *testing.T) {
	cases := []struct {
		filename   string
		wantFolder string
		wantName   string
	}{
		{"button_buy_bonus.png", "buttons", "button_buy_bonus.png"},
		{"free_spins_pop_up_select_1_landscape.png", "popups", "free_spins_pop_up_select_1_landscape.png"},
		{"symbol_9_1x3_blur.png", "symbols", "symbol_9_1x3_blur.png"},
		{"panel_jackpot_grand.png", "jackpot_panels", "panel_jackpot_grand.png"},
		{"jackpot_panels_idle.skel", "jackpot_panels", "jackpot_panels_idle.skel"},
		{"loading_screen_2_portrait.jpg", "loading_screen", "loading_screen_2_portrait.jpg"},
		{"win_event_big_win.png", "win_events", "win_event_big_win.png"},
		{"hold_and_win_background_landscape.jpg", "backgrounds", "hold_and_win_background_landscape.jpg"},
		{"buy_bonus_button.png", "buttons", "button_buy_bonus.png"}, // drift renamed

		// Frame-sequence members group under their base name, one folder per
		// group, not one folder per frame.
		{"frame_00.png", "frame", "frame_00.png"},
		{"frame_01.png", "frame", "frame_01.png"},
		{"coin_shower_07.png", "coin_shower", "coin_shower_07.png"},
	}

	p := newTestParser(t)
	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			res := p.Parse(tc.filename)
			require.Equal(t, StatusMatched, res.Status, "reason: %s", res.Reason)

			dest, err := p.Destination(res.Classification)
			require.NoError(t, err)
			require.Equal(t, tc.wantFolder, dest.Folder)
			require.Equal(t, tc.wantName, dest.Name)
		})
	}
}

func TestDestinationLowercasesExtension(t *testing.T) {
	p := newTestParser(t)
	res := p.Parse("ambient_idle.SKEL")
	require.Equal(t, StatusMatched, res.Status)

	dest, err := p.Destination(res.Classification)
	require.NoError(t, err)
	require.Equal(t, grammar.CategoryAmbient, res.Classification.Category)
	require.Equal(t, "ambient_idle.skel", dest.Name)
}
