package domain

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Character は登場キャラクターの視覚情報（DNA）を保持します。
type Character struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	VisualCues   []string `json:"visual_cues"`   // 生成プロンプトに注入する外見上の特徴
	ReferenceURL string   `json:"reference_url"` // 一貫性保持のための参照画像URL
	Seed         int64    `json:"seed"`          // 下流の画像生成で使う決定論的シード
	IsPrimary    bool     `json:"is_primary,omitempty"`
}

// String はキャラクターの情報を文字列で返します。
func (c Character) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.ID)
}

// CharactersMap はIDをキーとしたキャラクターの検索用マップです。
type CharactersMap map[string]Character

// GetCharacters はJSONバイト列からキャラクターマップをパースして返します。
// この関数はステートレスであり、キャッシュを行いません。
func GetCharacters(charactersJSON []byte) (CharactersMap, error) {
	var chars CharactersMap
	if err := json.Unmarshal(charactersJSON, &chars); err != nil {
		return nil, fmt.Errorf("キャラクター情報のJSONパースに失敗しました: %w", err)
	}
	return chars, nil
}

// LoadCharacters は指定されたファイルパスからJSONを読み込み、キャラクターマップを返します。
func LoadCharacters(path string) (CharactersMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("キャラクターファイルの読み込みに失敗しました: %w", err)
	}
	return GetCharacters(data)
}

// FindCharacter は直接のIDからキャラクター情報を特定します。
func (m CharactersMap) FindCharacter(id string) *Character {
	if m == nil {
		return nil
	}
	if char, ok := m[id]; ok {
		res := char
		return &res
	}
	if char, ok := m[strings.ToLower(id)]; ok {
		res := char
		return &res
	}
	return nil
}

// SortedIDs はマップのキーを辞書順で返します。走査順を安定させるために使います。
func (m CharactersMap) SortedIDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SeedFor はキャラクターの画像生成用シードを返します。
// 登録済みで Seed が設定されていればそれを、なければ名前から決定論的に導出します。
func (m CharactersMap) SeedFor(name string) int64 {
	if char := m.FindCharacter(name); char != nil && char.Seed != 0 {
		return char.Seed
	}
	return int64(StableHash(name))
}
