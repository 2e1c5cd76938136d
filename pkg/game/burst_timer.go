package game

// burstTimer 开场连发计时器
//
// 延迟 Delay 秒后，每隔 Interval 秒发射一枚，共 Count 枚。
// 第一枚在 Delay + Interval 时发射。
type burstTimer struct {
	Delay       float64 // 开场过渡延迟（秒）
	Interval    float64 // 连发间隔（秒）
	Count       int     // 总数
	Launched    int     // 已发射数量
	CurrentTime float64 // 自启动以来经过的时间（秒）
	active      bool
}

// start 启动计时器；已启动时不重复启动
func (b *burstTimer) start(delay, interval float64, count int) {
	if b.active {
		return
	}
	*b = burstTimer{
		Delay:    delay,
		Interval: interval,
		Count:    count,
		active:   count > 0,
	}
}

// advance 推进 dt 秒，返回本次到期的发射数量
func (b *burstTimer) advance(dt float64) int {
	if !b.active {
		return 0
	}
	b.CurrentTime += dt

	due := 0
	for b.Launched < b.Count && b.CurrentTime >= b.Delay+b.Interval*float64(b.Launched+1) {
		b.Launched++
		due++
	}
	if b.Launched >= b.Count {
		b.active = false
	}
	return due
}

// IsRunning 是否仍有未发射的火箭
func (b *burstTimer) IsRunning() bool {
	return b.active
}
