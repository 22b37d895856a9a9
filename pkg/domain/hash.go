package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"
)

// StableHash は安定識別子から決定論的な正の32bit値を生成します。
// プロセスやマシンをまたいでも同じ入力は必ず同じ値になるため、
// 視線方向やテンプレート変種の恣意的でないタイブレークに使います。
func StableHash(parts ...string) uint32 {
	joined := strings.ToLower(strings.Join(parts, "|"))
	hash := sha256.Sum256([]byte(joined))
	// ハッシュの最初の4バイトを取り出し、最上位ビットを落として正の数に揃えます
	return binary.BigEndian.Uint32(hash[:4]) & 0x7FFFFFFF
}

// GazeTendency はキャラクター識別子から決定論的な視線の傾向を導きます。
// 同じキャラクターはコマをまたいでも同じ方向を向きやすくなり、
// 画面上の一貫性が保たれます。
func GazeTendency(characterID string) GazeDirection {
	if StableHash(characterID)%2 == 0 {
		return GazeLeft
	}
	return GazeRight
}

// PairVariant は2人の話者ペアから決定論的に 0 または 1 の変種番号を選びます。
// ペアの並び順に依存しないよう、辞書順に正規化してからハッシュします。
func PairVariant(speakerA, speakerB string) int {
	if speakerA > speakerB {
		speakerA, speakerB = speakerB, speakerA
	}
	return int(StableHash(speakerA, speakerB) % 2)
}
