package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func assertSplitterResultValid(t *testing.T, s *SentenceSplitter, text string) {
	chars := []rune(text)
	cntToStr := func(beg, end int) string {
		b := strings.Builder{}
		for i := beg; i < end; i++ {
			b.WriteRune(chars[i])
		}
		return b.String()
	}

	cntStr := cntToStr(0, s.splitCnt[0])
	t.Log(cntStr)
	require.Equal(t, cntStr, text[0:s.splitIndex[0]])

	for i := 1; i < len(s.splitIndex); i++ {
		cntStr = cntToStr(s.splitCnt[i-1], s.splitCnt[i])
		t.Log(cntStr)
		require.Equal(t, cntStr, text[s.splitIndex[i-1]:s.splitIndex[i]])
	}

	cntStr = cntToStr(s.splitCnt[len(s.splitCnt)-1], utf8.RuneCountInString(text))
	t.Log(cntStr)
	require.Equal(t, cntStr, text[s.splitIndex[len(s.splitIndex)-1]:])
}

func TestSplitter_SplitWithNoSepText(t *testing.T) {
	s := SentenceSplitter{
		separators: []rune{'.', '!', '?', ';', ','},
		maxLen:     2,
		minLen:     1,
	}
	s.init()
	text := "abcdefghi"
	s.split(text)

	assertSplitterResultValid(t, &s, text)

	require.Equal(t, []int{2, 4, 6, 8}, s.splitCnt)
}

func TestSplitter_SplitWithFullSepText(t *testing.T) {
	s := SentenceSplitter{
		separators: []rune{'.', '!', '?', ';', ','},
		maxLen:     2,
		minLen:     1,
	}
	s.init()
	text := ",,,,..!!?"
	s.split(text)

	assertSplitterResultValid(t, &s, text)

	require.Equal(t, []int{2, 4, 6, 8}, s.splitCnt)
}

func TestSplitter_SplitSepPriority(t *testing.T) {
	s := SentenceSplitter{
		separators: []rune{'.', '!', '?', ';', ','},
		maxLen:     8,
		minLen:     4,
	}
	s.init()
	text := "....,;!?ooo.o"
	s.split(text)

	assertSplitterResultValid(t, &s, text)

	require.Equal(t, []int{4, 12}, s.splitCnt)
}

func TestSplitter_SplitToSentences(t *testing.T) {
	s := NewSentenceSplitter([]rune{'.', '!', '?', ';', ','}, 8, 64)
	text := "Drought reduces wheat yield. Cover crops improve soil structure. Irrigation supports rice."

	sentences := s.SplitToSentences(text)

	require.True(t, len(sentences) >= 2)
	require.Equal(t, text, strings.Join(sentences, ""))

	for _, sentence := range sentences {
		require.NotEmpty(t, strings.TrimSpace(sentence))
	}
}
