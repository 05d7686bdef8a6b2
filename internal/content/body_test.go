package content

import (
	"reflect"
	"testing"
)

func TestParseBody(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []BodyBlock
	}{
		{
			name:  "single paragraph",
			input: "Nasze wydawnictwo wspiera autorów.",
			want:  []BodyBlock{Paragraph("Nasze wydawnictwo wspiera autorów.")},
		},
		{
			name:  "wrapped lines join into one paragraph",
			input: "Pierwsza linia\ndruga linia",
			want:  []BodyBlock{Paragraph("Pierwsza linia druga linia")},
		},
		{
			name:  "dash list",
			input: "- pierwsza pozycja\n- druga pozycja",
			want:  []BodyBlock{List("pierwsza pozycja", "druga pozycja")},
		},
		{
			name:  "unicode bullets",
			input: "• jedna\n• druga",
			want:  []BodyBlock{List("jedna", "druga")},
		},
		{
			name:  "paragraphs and list mixed",
			input: "Wstęp do oferty.\n\n- korekta\n- skład\n\nZakończenie.",
			want: []BodyBlock{
				Paragraph("Wstęp do oferty."),
				List("korekta", "skład"),
				Paragraph("Zakończenie."),
			},
		},
		{
			name:  "blank input",
			input: "   \n\n  ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBody(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseBody() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormatBody(t *testing.T) {
	blocks := []BodyBlock{
		Paragraph("Wstęp do oferty."),
		List("korekta", "skład"),
		Paragraph("Zakończenie."),
	}
	want := "Wstęp do oferty.\n\n- korekta\n- skład\n\nZakończenie."
	if got := FormatBody(blocks); got != want {
		t.Errorf("FormatBody() = %q, want %q", got, want)
	}
}

func TestBodyRoundTrip(t *testing.T) {
	for key, entry := range DefaultContent() {
		got := ParseBody(FormatBody(entry.Body))
		if !reflect.DeepEqual(got, entry.Body) {
			t.Errorf("tab %s: round trip changed the body:\nwant %+v\ngot  %+v", key, entry.Body, got)
		}
	}
}
