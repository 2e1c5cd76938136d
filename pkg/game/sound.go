package game

// Sound 爆炸音效的出口
//
// Unlock 对应"第一次用户交互后才允许出声"：在此之前 PlayExplosion 必须是空操作。
// 实现需自行保证在后端不可用时静默退化。
type Sound interface {
	Unlock()
	PlayExplosion()
}

// silentSound 未提供音效后端时使用
type silentSound struct{}

func (silentSound) Unlock()        {}
func (silentSound) PlayExplosion() {}
