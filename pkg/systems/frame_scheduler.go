package systems

// FrameHandle 帧回调句柄，0 为无效句柄
type FrameHandle uint64

// FrameCallback 帧回调函数
type FrameCallback func()

// scheduledFrame 一个已登记的帧回调
type scheduledFrame struct {
	handle    FrameHandle
	callback  FrameCallback
	cancelled bool
}

// FrameScheduler 渲染时钟（逐帧回调调度器）
//
// 语义与浏览器的 requestAnimationFrame 一致：
//   - RequestFrame 登记的回调在下一次 RunFrame 时执行一次
//   - 回调执行期间再次 RequestFrame 的回调排到下一帧，不会在本帧执行
//   - CancelFrame 之后该句柄永远不会执行，即使在同一帧的其他回调中取消
//
// App.Update 每个 tick 调用一次 RunFrame。单 goroutine 使用，不加锁。
type FrameScheduler struct {
	nextHandle FrameHandle
	queue      []*scheduledFrame
	index      map[FrameHandle]*scheduledFrame
	frame      uint64
}

// NewFrameScheduler 创建调度器
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{
		index: make(map[FrameHandle]*scheduledFrame),
	}
}

// RequestFrame 登记下一帧执行的回调
func (s *FrameScheduler) RequestFrame(cb FrameCallback) FrameHandle {
	s.nextHandle++
	entry := &scheduledFrame{
		handle:   s.nextHandle,
		callback: cb,
	}
	s.queue = append(s.queue, entry)
	s.index[entry.handle] = entry
	return entry.handle
}

// CancelFrame 取消尚未执行的回调
// 对已执行、已取消或无效的句柄调用是安全的空操作
func (s *FrameScheduler) CancelFrame(handle FrameHandle) {
	entry, ok := s.index[handle]
	if !ok {
		return
	}
	entry.cancelled = true
	delete(s.index, handle)
}

// RunFrame 执行当前帧的全部回调，返回实际执行的数量
func (s *FrameScheduler) RunFrame() int {
	batch := s.queue
	s.queue = nil
	s.frame++

	executed := 0
	for _, entry := range batch {
		if entry.cancelled {
			continue
		}
		delete(s.index, entry.handle)
		if entry.callback != nil {
			entry.callback()
		}
		executed++
	}
	return executed
}

// Pending 返回等待执行的回调数量（不含已取消的）
func (s *FrameScheduler) Pending() int {
	return len(s.index)
}

// Frame 返回已执行的帧数
func (s *FrameScheduler) Frame() uint64 {
	return s.frame
}
