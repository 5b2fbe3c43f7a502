package num2text

import "testing"

func TestAzerbaijaniCardinals(t *testing.T) {
	t.Parallel()

	runSpellCases(t, "az", []spellCase{
		{name: "zero", value: 0, want: "sıfır"},
		{name: "no teens", value: 11, want: "on bir"},
		{name: "bare hundred", value: 100, want: "yüz"},
		{name: "hundreds", value: 342, want: "üç yüz qırx iki"},
		{name: "bare thousand", value: 1000, want: "min"},
		{name: "thousands", value: 2019, want: "iki min on doqquz"},
		{name: "million", value: 1000000, want: "bir milyon"},
		{name: "comma by default", value: 3.14, want: "üç vergül bir dörd"},
		{name: "negative", value: -2, want: "mənfi iki"},
		{name: "currency", value: 1.5, opts: Options{Mode: ModeCurrency}, want: "bir manat əlli qəpik"},
	})
}

func TestAzerbaijaniOrdinals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want string
	}{
		{1, "birinci"},
		{2, "ikinci"},
		{3, "üçüncü"},
		{4, "dördüncü"},
		{6, "altıncı"},
		{9, "doqquzuncu"},
		{10, "onuncu"},
		{20, "iyirminci"},
		{40, "qırxıncı"},
		{100, "yüzüncü"},
		{1000, "mininci"},
	}
	cases := make([]spellCase, 0, len(tests))
	for _, tt := range tests {
		cases = append(cases, spellCase{name: tt.want, value: tt.in, opts: Options{Mode: ModeOrdinal}, want: tt.want})
	}
	runSpellCases(t, "az", cases)
}

func TestAzerbaijaniRatios(t *testing.T) {
	t.Parallel()

	ratio := Options{FractionStyle: FractionRatio}
	runSpellCases(t, "az", []spellCase{
		{name: "tenths", value: 0.5, opts: ratio, want: "sıfır tam onda beş"},
		{name: "hundredths", value: 3.14, opts: ratio, want: "üç tam yüzdə on dörd"},
		{name: "thousandths", value: "1.125", opts: ratio, want: "bir tam mində yüz iyirmi beş"},
		{name: "built denominator", value: "2.0005", opts: ratio, want: "iki tam on mində beş"},
		{name: "negative", value: -0.5, opts: ratio, want: "mənfi sıfır tam onda beş"},
		{name: "whole ignores ratio", value: 7, opts: ratio, want: "yeddi"},
	})
}

func TestVowelHarmony(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in        string
		vowel     rune
		locative  string
		ordSuffix string
	}{
		{in: "on", vowel: 'o', locative: "da", ordSuffix: "uncu"},
		{in: "min", vowel: 'i', locative: "də", ordSuffix: "inci"},
		{in: "milyard", vowel: 'a', locative: "da", ordSuffix: "ıncı"},
		{in: "yüz", vowel: 'ü', locative: "də", ordSuffix: "üncü"},
		{in: "səkkiz", vowel: 'i', locative: "də", ordSuffix: "inci"},
	}
	for _, tt := range tests {
		v := lastVowel(tt.in)
		if v != tt.vowel {
			t.Errorf("lastVowel(%q) = %q; want %q", tt.in, v, tt.vowel)
		}
		if got := locativeSuffix(tt.in); got != tt.locative {
			t.Errorf("locativeSuffix(%q) = %q; want %q", tt.in, got, tt.locative)
		}
		if got := ordinalSuffix(v); got != tt.ordSuffix {
			t.Errorf("ordinalSuffix(%q) = %q; want %q", v, got, tt.ordSuffix)
		}
	}
	if v := lastVowel("xyz"); v != 0 {
		t.Errorf("lastVowel(xyz) = %q; want 0", v)
	}
}
