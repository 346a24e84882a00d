// seehuhn.de/go/sysfont - font substitution for PDF renderers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package match

import (
	"strings"

	"github.com/go-text/typesetting/font"

	"seehuhn.de/go/sysfont"
)

// defaultAliases lists groups of families which are metric compatible,
// or which are commonly used in place of each other.
var defaultAliases = [][]string{
	{"Arial", "Helvetica", "Liberation Sans", "Arimo", "Nimbus Sans", "Nimbus Sans L", "FreeSans"},
	{"Times New Roman", "Times", "Times Roman", "Liberation Serif", "Tinos", "Nimbus Roman", "Nimbus Roman No9 L", "FreeSerif"},
	{"Courier New", "Courier", "Liberation Mono", "Cousine", "Nimbus Mono", "Nimbus Mono PS", "FreeMono"},
	{"Symbol", "Standard Symbols PS", "Standard Symbols L", "OpenSymbol"},
	{"ZapfDingbats", "Dingbats", "D050000L"},
	{"Tahoma", "DejaVu Sans", "Verdana"},
	{"SimSun", "NSimSun", "宋体", "新宋体", "Noto Serif CJK SC", "Source Han Serif SC"},
	{"SimHei", "黑体", "Noto Sans CJK SC", "Source Han Sans SC"},
	{"MingLiU", "PMingLiU", "細明體", "新細明體", "Noto Serif CJK TC", "Source Han Serif TC"},
	{"MS Gothic", "MS PGothic", "ＭＳ ゴシック", "ＭＳ Ｐゴシック", "IPAGothic", "Noto Sans CJK JP", "Source Han Sans JP"},
	{"MS Mincho", "MS PMincho", "ＭＳ 明朝", "ＭＳ Ｐ明朝", "IPAMincho", "Noto Serif CJK JP", "Source Han Serif JP"},
	{"Batang", "BatangChe", "바탕", "Noto Serif CJK KR", "Source Han Serif KR", "NanumMyeongjo"},
	{"Gulim", "GulimChe", "굴림", "Noto Sans CJK KR", "Source Han Sans KR", "NanumGothic"},
}

// normalize maps a family or face name to a canonical form, used to
// compare names while ignoring case, spacing and compatibility forms.
func normalize(name string) string {
	name = sysfont.NormalizeFaceName(name)
	name = strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return -1
		}
		return r
	}, name)
	return font.NormalizeFamily(name)
}

// aliasTable maps normalized names to the index of their alias group.
type aliasTable map[string]int

func newAliasTable(groups ...[][]string) aliasTable {
	res := make(aliasTable)
	idx := 0
	for _, gg := range groups {
		for _, group := range gg {
			for _, name := range group {
				key := normalize(name)
				if _, seen := res[key]; !seen {
					res[key] = idx
				}
			}
			idx++
		}
	}
	return res
}

// same reports whether the two normalized names are in the same alias
// group.
func (at aliasTable) same(a, b string) bool {
	ga, ok := at[a]
	if !ok {
		return false
	}
	gb, ok := at[b]
	return ok && ga == gb
}
