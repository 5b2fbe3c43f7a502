package num2text

import (
	"fmt"
	"sort"
)

// validateLocale sweeps every group value through the selector and
// provider at every level, so that missing table entries fail the build
// instead of a conversion.
func validateLocale(loc *Locale, culture CultureService) error {
	if loc == nil || loc.Lexicon == nil || loc.Magnitude == nil || loc.Words == nil || loc.Classes == nil {
		return fmt.Errorf("num2text: incomplete locale")
	}
	lex := loc.Lexicon

	if missing := lex.missingTokens(); len(missing) > 0 {
		return fmt.Errorf("%w: %s: missing tokens %v", ErrLookupMiss, lex.Code, missing)
	}

	model := loc.Magnitude
	limit := model.GroupLimit()

	scales := make([]ScaleWord, model.Levels())
	for level := 1; level < model.Levels(); level++ {
		scale, err := lex.Scale(model.Scales[level])
		if err != nil {
			return err
		}
		scales[level] = scale
	}

	for level := 0; level < model.Levels(); level++ {
		gender := GenderUnspecified
		if level > 0 {
			gender = scales[level].Gender
		}
		for v := 0; v < limit; v++ {
			for _, compound := range []bool{false, true} {
				ctx := loc.Classes.Classify(ClassRequest{Value: v, Level: level, Role: RoleCardinal, Gender: gender, Compound: compound})
				if level > 0 {
					if _, ok := scales[level].Forms.Variant(ctx.Class); !ok {
						return lookupMiss(lex.Code, "scale form", fmt.Sprintf("%s/%s", model.Scales[level], ctx.Class))
					}
				}
				if v == 0 {
					continue
				}
				if err := checkGroup(loc, v, ctx); err != nil {
					return err
				}
			}
		}
	}

	codes := make([]string, 0, len(lex.Currencies))
	for code := range lex.Currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		names := lex.Currencies[code]
		if err := checkUnit(loc, code, RoleCurrencyMajor, names.Major, limit); err != nil {
			return err
		}
		if len(names.Minor.Forms) > 0 {
			if err := checkUnit(loc, code, RoleCurrencyMinor, names.Minor, limit); err != nil {
				return err
			}
		}
	}

	if culture != nil {
		if code, err := culture.GetCurrencyCode(lex.Code); err == nil {
			if _, ok := lex.Currencies[code]; !ok {
				return lookupMiss(lex.Code, "currency", code)
			}
		}
	}
	return nil
}

func checkGroup(loc *Locale, v int, ctx GrammaticalContext) error {
	words, err := loc.Words.Group(v, ctx)
	if err != nil {
		return fmt.Errorf("num2text: %s: group %d (%s, level %d): %w", loc.Code, v, ctx.Class, ctx.Level, err)
	}
	if len(words) == 0 {
		return lookupMiss(loc.Code, "group", fmt.Sprint(v))
	}
	return nil
}

func checkUnit(loc *Locale, code string, role Role, unit UnitWords, limit int) error {
	if len(unit.Forms) == 0 {
		return lookupMiss(loc.Code, "currency", code)
	}
	for v := 0; v < limit; v++ {
		for _, compound := range []bool{false, true} {
			ctx := loc.Classes.Classify(ClassRequest{Value: v, Role: role, Gender: unit.Gender, Compound: compound})
			if _, ok := unit.Forms.Variant(ctx.Class); !ok {
				return lookupMiss(loc.Code, "currency form", fmt.Sprintf("%s/%s", code, ctx.Class))
			}
			if v == 0 {
				continue
			}
			if err := checkGroup(loc, v, ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
