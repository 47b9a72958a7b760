package validation

import "strings"

const (
	// LangEN is the fallback message language.
	LangEN = "en"
	LangTR = "tr"
)

// messages maps language -> message key -> template. Size-like rules are
// keyed as "<rule>.<variant>". Templates use ":attribute" for the field's
// display name and ":<param>" for rule parameters.
var messages = map[string]map[string]string{
	LangEN: {
		"required":        "The :attribute field is required.",
		"email":           "The :attribute format is invalid.",
		"url":             "The :attribute format is invalid.",
		"alpha":           "The :attribute field must contain only alphabetic characters.",
		"alpha_num":       "The :attribute field must be alphanumeric.",
		"alpha_dash":      "The :attribute field may only contain alpha-numeric characters, as well as dashes and underscores.",
		"numeric":         "The :attribute must be a number.",
		"integer":         "The :attribute must be an integer.",
		"boolean":         "The :attribute field must be true or false.",
		"string":          "The :attribute must be a string.",
		"array":           "The :attribute must be an array.",
		"in":              "The selected :attribute is invalid.",
		"same":            "The :attribute and :same fields must match.",
		"confirmed":       "The :attribute confirmation does not match.",
		"min.numeric":     "The :attribute must be at least :min.",
		"min.string":      "The :attribute must be at least :min characters.",
		"min.array":       "The :attribute must have at least :min items.",
		"max.numeric":     "The :attribute may not be greater than :max.",
		"max.string":      "The :attribute may not be greater than :max characters.",
		"max.array":       "The :attribute may not have more than :max items.",
		"size.numeric":    "The :attribute must be :size.",
		"size.string":     "The :attribute must be :size characters.",
		"size.array":      "The :attribute must contain :size items.",
		"between.numeric": "The :attribute field must be between :min and :max.",
		"between.string":  "The :attribute field must be between :min and :max characters.",
		"between.array":   "The :attribute field must have between :min and :max items.",
	},
	LangTR: {
		"required":        ":attribute alanı gerekli.",
		"email":           ":attribute biçimi geçersiz.",
		"url":             ":attribute biçimi geçersiz.",
		"alpha":           ":attribute sadece harflerden oluşmalıdır.",
		"alpha_num":       ":attribute sadece harfler ve rakamlar içermelidir.",
		"alpha_dash":      ":attribute sadece harfler, rakamlar, tire ve alt çizgi içermelidir.",
		"numeric":         ":attribute sayı olmalıdır.",
		"integer":         ":attribute tam sayı olmalıdır.",
		"boolean":         ":attribute alanı doğru veya yanlış olmalıdır.",
		"string":          ":attribute metin olmalıdır.",
		"array":           ":attribute dizi olmalıdır.",
		"in":              "Seçili :attribute geçersiz.",
		"same":            ":attribute ile :same aynı olmalıdır.",
		"confirmed":       ":attribute tekrarı eşleşmiyor.",
		"min.numeric":     ":attribute en az :min olmalıdır.",
		"min.string":      ":attribute en az :min karakter olmalıdır.",
		"min.array":       ":attribute en az :min öğe içermelidir.",
		"max.numeric":     ":attribute :max değerinden büyük olmamalıdır.",
		"max.string":      ":attribute :max karakterden uzun olmamalıdır.",
		"max.array":       ":attribute :max öğeden fazla içermemelidir.",
		"size.numeric":    ":attribute :size olmalıdır.",
		"size.string":     ":attribute :size karakter olmalıdır.",
		"size.array":      ":attribute :size öğe içermelidir.",
		"between.numeric": ":attribute :min ile :max arasında olmalıdır.",
		"between.string":  ":attribute :min ile :max karakter arasında olmalıdır.",
		"between.array":   ":attribute :min ile :max arasında öğe içermelidir.",
	},
}

// paramNames names the placeholders filled from FieldError.Params.
var paramNames = map[string][]string{
	"min":     {"min"},
	"max":     {"max"},
	"size":    {"size"},
	"between": {"min", "max"},
	"same":    {"same"},
}

// Languages reports the languages that have a message table.
func Languages() []string {
	return []string{LangEN, LangTR}
}

func table(lang string) map[string]string {
	if t, ok := messages[lang]; ok {
		return t
	}
	return messages[LangEN]
}

// Localize fills the Message of every record in errs from the table of
// lang (falling back to English). attrs overrides display names by field
// path; unnamed fields are shown with underscores replaced by spaces.
func Localize(errs *Errors, lang string, attrs map[string]string) {
	if errs == nil {
		return
	}

	t := table(lang)
	for i := range errs.Fields {
		f := &errs.Fields[i]

		key := f.Kind
		if f.variant != "" {
			key += "." + f.variant
		}
		tmpl, ok := t[key]
		if !ok {
			tmpl = messages[LangEN][key]
		}

		pairs := []string{":attribute", attributeName(f.Path, attrs)}
		for j, name := range paramNames[f.Kind] {
			if j >= len(f.Params) {
				break
			}
			value := f.Params[j]
			if f.Kind == "same" {
				value = attributeName(value, attrs)
			}
			pairs = append(pairs, ":"+name, value)
		}

		f.Message = strings.NewReplacer(pairs...).Replace(tmpl)
	}
}

func attributeName(path string, attrs map[string]string) string {
	if name, ok := attrs[path]; ok {
		return name
	}
	return strings.ReplaceAll(path, "_", " ")
}
