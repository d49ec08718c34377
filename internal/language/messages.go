package language

import (
	"fmt"

	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

// Key identifies a localized UI string.
type Key string

const (
	KeyTitle         Key = "title"
	KeyCopyButton    Key = "copy_button"
	KeyExportButton  Key = "export_button"
	KeyPrintButton   Key = "print_button"
	KeyInstruction   Key = "instruction"
	KeyDescription   Key = "description"
	KeyProducts      Key = "products"
	KeyMechanism     Key = "mechanism"
	KeySource        Key = "source"
	KeyEmptyState    Key = "empty_state"
	KeyFullReference Key = "full_reference"
	KeyCopied        Key = "copied"
	KeyCopyFailed    Key = "copy_failed"
	KeyCopyManual    Key = "copy_manual"
	KeyExported      Key = "exported"
	KeyExportFailed  Key = "export_failed"
	KeyExportNoPDF   Key = "export_no_pdf"
	KeySwitchTitle   Key = "switch_title"
	KeyFooter        Key = "footer"
)

var translations = map[Language]map[Key]string{
	English: {
		KeyTitle:         "Metabolic Oxidation Pathways",
		KeyCopyButton:    "Copy Structure",
		KeyExportButton:  "Download PDF",
		KeyPrintButton:   "Print Reference",
		KeyInstruction:   "Explore the 7 oxidation types: Aromatic Ox, Alkene Ox, Alkyl Ox (α, ω, ω-1), Alcohol Ox, Sulfur Ox, sp² N Ox, and Oxidative Dealkylation (N/O/S).",
		KeyDescription:   "Description",
		KeyProducts:      "Major Products",
		KeyMechanism:     "Mechanism Note",
		KeySource:        "PDF Reference:",
		KeyEmptyState:    "Select a functional group to view details",
		KeyFullReference: "Complete Metabolic Reference",
		KeyCopied:        "SMILES string copied!\nPaste this into Marvin JS, ChemDraw, or any molecular editor.",
		KeyCopyFailed:    "Could not copy the SMILES string. Copy it manually: {0}",
		KeyCopyManual:    "Select and copy the SMILES string: {0}",
		KeyExported:      "Reference exported to {0}",
		KeyExportFailed:  "Could not export the reference document.",
		KeyExportNoPDF:   "The PDF reference is only available in English. Use Print Reference instead.",
		KeySwitchTitle:   "Switch Language",
		KeyFooter:        "Generated by MetaboSchema • Faculty of Pharmacy • 2025/2026",
	},
	Arabic: {
		KeyTitle:         "مسارات الأكسدة الأيضية",
		KeyCopyButton:    "نسخ المركب",
		KeyExportButton:  "تحميل PDF",
		KeyPrintButton:   "طباعة المرجع",
		KeyInstruction:   "استكشف أنواع الأكسدة السبعة: الأكسدة العطرية، الألكينات، الألكيل (ألفا، أوميغا، أوميغا-1)، الكحولات، الكبريت، النيتروجين sp²، ونزع الألكيل الأكسدي (N/O/S).",
		KeyDescription:   "الشرح",
		KeyProducts:      "النواتج الرئيسية",
		KeyMechanism:     "ملاحظة حول الآلية",
		KeySource:        "مرجع الملف:",
		KeyEmptyState:    "اختر مجموعة وظيفية لعرض التفاصيل",
		KeyFullReference: "المرجع الكامل للأكسدة الأيضية",
		KeyCopied:        "تم نسخ كود SMILES!\nيمكنك لصقه الآن في Marvin JS أو ChemDraw.",
		KeyCopyFailed:    "تعذر نسخ كود SMILES. انسخه يدوياً: {0}",
		KeyCopyManual:    "حدد كود SMILES وانسخه: {0}",
		KeyExported:      "تم تصدير المرجع إلى {0}",
		KeyExportFailed:  "تعذر تصدير ملف المرجع.",
		KeyExportNoPDF:   "مرجع PDF متاح باللغة الإنجليزية فقط. استخدم طباعة المرجع بدلاً من ذلك.",
		KeySwitchTitle:   "تغيير اللغة",
		KeyFooter:        "Generated by MetaboSchema • Faculty of Pharmacy • 2025/2026",
	},
}

// Messages resolves localized UI strings.
type Messages struct {
	translators map[Language]ut.Translator
}

// NewMessages registers every UI string with a translator per language.
func NewMessages() (*Messages, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, ar.New())

	m := &Messages{
		translators: make(map[Language]ut.Translator, len(All)),
	}
	for _, lang := range All {
		trans, found := uni.GetTranslator(string(lang))
		if !found {
			return nil, fmt.Errorf("uni.GetTranslator(%s) > translator not found", lang)
		}
		for key, text := range translations[lang] {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("trans.Add(%s, %s) > %w", lang, key, err)
			}
		}
		m.translators[lang] = trans
	}
	return m, nil
}

// MustNewMessages is like NewMessages but panics on error.
func MustNewMessages() *Messages {
	m, err := NewMessages()
	if err != nil {
		panic(err)
	}
	return m
}

// Text returns the string for key in lang. Unknown languages fall back to English
// and unknown keys are returned verbatim.
func (m *Messages) Text(lang Language, key Key, params ...string) string {
	trans, ok := m.translators[lang]
	if !ok {
		trans = m.translators[English]
	}
	text, err := trans.T(key, params...)
	if err != nil {
		return string(key)
	}
	return text
}
