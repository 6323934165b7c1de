// Package infosource models discrete information sources: finite symbol
// alphabets with probabilities, labels and binary codewords, validated and
// kept consistent with their encoder/decoder dictionaries.
//
// What lives here:
//
//	source/   — InformationSource: random construction, validated setters,
//	            label→index and codeword→index lookups, entropy statistics
//	examples/ — a runnable walkthrough of the public API
//
// The package does not build codes (no Huffman/Shannon–Fano), does not check
// prefix-freeness and does not persist anything. It produces the validated
// table an entropy coder starts from.
//
//	go get github.com/katalvlaran/infosource/source
package infosource
