package parallel

// DefaultRowsPerTask is the band height used when the caller passes a
// non-positive value to ForRows.
const DefaultRowsPerTask = 8

// ForRows calls fn once for every y in [minY, maxY). Rows are grouped into
// bands of rowsPerTask and the bands are spread over the pool. Each row is
// visited exactly once; fn must only touch state that belongs to its row.
//
// With a nil pool or a single worker the rows run in order on the calling
// goroutine.
func ForRows(p *WorkerPool, minY, maxY, rowsPerTask int, fn func(y int)) {
	if maxY <= minY {
		return
	}
	if rowsPerTask <= 0 {
		rowsPerTask = DefaultRowsPerTask
	}
	if p.Workers() <= 1 || maxY-minY <= rowsPerTask {
		for y := minY; y < maxY; y++ {
			fn(y)
		}
		return
	}

	tasks := make([]func(), 0, (maxY-minY+rowsPerTask-1)/rowsPerTask)
	for start := minY; start < maxY; start += rowsPerTask {
		end := min(start+rowsPerTask, maxY)
		tasks = append(tasks, func() {
			for y := start; y < end; y++ {
				fn(y)
			}
		})
	}
	p.ExecuteAll(tasks)
}
