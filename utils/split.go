package utils

import "unicode/utf8"

/*
SentenceSplitter cuts a long text into shorter units whose lengths fall in
[minLen, maxLen] (bounds included, counted in runes), preferring to cut at the
given separators.

Separators earlier in the slice win when several candidates are available.
*/
type SentenceSplitter struct {

	/*
		index: offset counted in bytes
		cnt: offset counted in runes
	*/

	// input
	separators []rune // split characters, descending priority
	maxLen     int    // maximum unit length
	minLen     int    // minimum unit length

	// index
	separatorCharToIndex map[rune]int // separators[i] -> i
	runeLenOfSeparator   []int        // utf8-encoded byte length of separators[i]

	// state
	lastSplitIndex       int   // index of the previous cut
	lastSplitCnt         int   // cnt of the previous cut
	lastIndexOfSeparator []int // lastIndexOfSeparator[i] is the latest index separators[i] appeared at
	lastCntOfSeparator   []int // lastCntOfSeparator[i] is the latest cnt separators[i] appeared at

	// output
	splitIndex []int // cut positions as index
	splitCnt   []int // cut positions as cnt
}

func (s *SentenceSplitter) updateLastIndexAndCntOfSeparator(ch rune, index, cnt int) {
	sep, ok := s.separatorCharToIndex[ch]
	if !ok {
		return
	}

	s.lastIndexOfSeparator[sep] = index
	s.lastCntOfSeparator[sep] = cnt
}

func (s *SentenceSplitter) addSplit(currentIndex, currentCnt int) {
	splitIndex := currentIndex
	splitCnt := currentCnt

	for i := 0; i < len(s.separators); i++ {
		cnt := s.lastCntOfSeparator[i] + 1
		if cnt >= s.lastSplitCnt+s.minLen {
			splitCnt = cnt
			splitIndex = s.lastIndexOfSeparator[i] + s.runeLenOfSeparator[i]
			break
		}
	}

	s.lastSplitCnt = splitCnt
	s.lastSplitIndex = splitIndex
	s.splitCnt = append(s.splitCnt, splitCnt)
	s.splitIndex = append(s.splitIndex, splitIndex)
}

func (s *SentenceSplitter) init() {
	s.separatorCharToIndex = make(map[rune]int, len(s.separators))
	s.runeLenOfSeparator = make([]int, len(s.separators))
	s.lastIndexOfSeparator = make([]int, len(s.separators))
	s.lastCntOfSeparator = make([]int, len(s.separators))

	for i, separator := range s.separators {
		s.separatorCharToIndex[separator] = i
		s.runeLenOfSeparator[i] = utf8.RuneLen(s.separators[i])
	}
}

func (s *SentenceSplitter) split(text string) {
	for i := 0; i < len(s.separators); i++ {
		s.lastIndexOfSeparator[i] = -1
		s.lastCntOfSeparator[i] = -1
	}

	cnt := -1
	for index, ch := range text {
		cnt += 1

		if cnt >= s.lastSplitCnt+s.maxLen {
			s.addSplit(index, cnt)
		}

		s.updateLastIndexAndCntOfSeparator(ch, index, cnt)
	}
}

/*
Split cuts text into units of [minLen, maxLen] runes, preferring the given
separators.

Return values:

	splitIndexOnByte: cut offsets in bytes (0 and len(text) excluded), so unit i is text[splitIndexOnByte[i] : splitIndexOnByte[i+1]]
	splitIndexOnRune: cut offsets in runes (0 and len([]rune(text)) excluded), so unit i is []rune(text)[splitIndexOnRune[i] : splitIndexOnRune[i+1]]
*/
func (s *SentenceSplitter) Split(text string) (splitIndexOnByte, splitIndexOnRune []int) {
	s.split(text)
	return s.splitIndex, s.splitCnt
}

/*
SplitToSentences cuts text and materializes the units as strings, including
the head and tail pieces the raw cut offsets leave implicit.
*/
func (s *SentenceSplitter) SplitToSentences(text string) []string {
	indexes, _ := s.Split(text)

	ret := make([]string, 0, len(indexes)+1)
	begin := 0
	for _, index := range indexes {
		ret = append(ret, text[begin:index])
		begin = index
	}

	if begin < len(text) {
		ret = append(ret, text[begin:])
	}

	return ret
}

/*
NewSentenceSplitter builds a SentenceSplitter.

SentenceSplitter cuts a long text into shorter units whose lengths fall in
[minLen, maxLen] (bounds included, counted in runes), preferring to cut at the
given separators.
*/
func NewSentenceSplitter(separators []rune, minLen, maxLen int) *SentenceSplitter {
	ret := SentenceSplitter{
		separators: separators,
		maxLen:     maxLen,
		minLen:     minLen,
	}
	ret.init()
	return &ret
}
