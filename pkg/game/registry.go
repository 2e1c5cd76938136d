package game

import "github.com/gonewx/fireworks/pkg/entities"

// Registry 当前存活的全部实体
//
// 三个互相独立的有序集合，追加在尾部、绘制顺序即插入顺序。
// 移除只发生在帧调度内部（倒序遍历，原地删除），外部事件只追加。
// 所有访问都在循环所在的 goroutine 上进行，因此不加锁。
type Registry struct {
	rockets []*entities.Rocket
	sparks  []*entities.Particle
	trails  []*entities.Particle
}

// NewRegistry 创建空的实体集合
func NewRegistry() *Registry {
	return &Registry{}
}

// AddRocket 追加一枚火箭
func (r *Registry) AddRocket(rk *entities.Rocket) {
	r.rockets = append(r.rockets, rk)
}

// AddSparks 追加一批爆炸火花（一次爆炸）
func (r *Registry) AddSparks(ps []*entities.Particle) {
	r.sparks = append(r.sparks, ps...)
}

// AddTrail 追加一个指针拖尾粒子
func (r *Registry) AddTrail(p *entities.Particle) {
	r.trails = append(r.trails, p)
}

// Counts 返回三个集合的当前长度
func (r *Registry) Counts() (rockets, sparks, trails int) {
	return len(r.rockets), len(r.sparks), len(r.trails)
}

// Total 全部实体数量
func (r *Registry) Total() int {
	return len(r.rockets) + len(r.sparks) + len(r.trails)
}

// removeAt 保序删除第 i 个元素，并清掉尾部悬挂的引用
func removeAt[T any](s []*T, i int) []*T {
	copy(s[i:], s[i+1:])
	s[len(s)-1] = nil
	return s[:len(s)-1]
}
