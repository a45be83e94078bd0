// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of TMINE.
//
//  TMINE is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  TMINE is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with TMINE.  If not, see <https://www.gnu.org/licenses/>.

// Package morph provides morphological tokenization of Japanese
// text based on the IPA dictionary feature layout.
package morph

// noValue is the IPA dictionary placeholder for an undefined attribute
const noValue = "*"

// positions of individual attributes within an IPA feature vector
const (
	featPOS = iota
	featPOSDetail1
	featPOSDetail2
	featPOSDetail3
	featInflectionType
	featInflectionForm
	featBaseForm
	featReading
	featPronunciation
)

// Morpheme is a single token produced by the morphological tagger
// along with its properties as provided by the IPA dictionary.
type Morpheme struct {

	// Surface is the form as it occurs in the original text
	Surface string `json:"surface"`

	// POS is the main part of speech category (名詞, 動詞, ...)
	POS string `json:"pos"`

	POSDetail1 string `json:"posDetail1"`

	POSDetail2 string `json:"posDetail2"`

	POSDetail3 string `json:"posDetail3"`

	InflectionType string `json:"inflectionType"`

	InflectionForm string `json:"inflectionForm"`

	// BaseForm is the dictionary form of the token. In case the
	// dictionary provides no base form, Surface is used instead
	// so the value is never empty for a non-empty token.
	BaseForm string `json:"baseForm"`

	Reading string `json:"reading,omitempty"`

	Pronunciation string `json:"pronunciation,omitempty"`
}

// IsNoun tests the main part of speech category
func (m Morpheme) IsNoun() bool {
	return m.POS == "名詞"
}

// Sequence is an ordered list of morphemes matching
// the original text order. Once produced by a tagger,
// it is expected to be read-only.
type Sequence []Morpheme

func featAt(features []string, idx int) string {
	if idx < len(features) {
		return features[idx]
	}
	return ""
}

// FromFeatures creates a morpheme out of a surface form and an
// IPA-layout feature vector. Unknown words may come with a shorter
// vector (no reading and pronunciation) which is handled here.
func FromFeatures(surface string, features []string) Morpheme {
	ans := Morpheme{
		Surface:        surface,
		POS:            featAt(features, featPOS),
		POSDetail1:     featAt(features, featPOSDetail1),
		POSDetail2:     featAt(features, featPOSDetail2),
		POSDetail3:     featAt(features, featPOSDetail3),
		InflectionType: featAt(features, featInflectionType),
		InflectionForm: featAt(features, featInflectionForm),
		BaseForm:       featAt(features, featBaseForm),
		Reading:        featAt(features, featReading),
		Pronunciation:  featAt(features, featPronunciation),
	}
	if ans.BaseForm == noValue || ans.BaseForm == "" {
		ans.BaseForm = surface
	}
	if ans.Reading == noValue {
		ans.Reading = ""
	}
	if ans.Pronunciation == noValue {
		ans.Pronunciation = ""
	}
	return ans
}
