package drift

import "testing"

func TestTasksRunInDueOrder(t *testing.T) {
	var q Tasks
	var got []string
	q.Schedule(300, func(float64) { got = append(got, "c") })
	q.Schedule(100, func(float64) { got = append(got, "a") })
	q.Schedule(200, func(float64) { got = append(got, "b") })
	q.Schedule(200, func(float64) { got = append(got, "b2") })

	if n := q.Run(150); n != 1 {
		t.Errorf("Run(150) ran %d tasks, want 1", n)
	}
	if n := q.Run(1000); n != 3 {
		t.Errorf("Run(1000) ran %d tasks, want 3", n)
	}
	want := []string{"a", "b", "b2", "c"}
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order = %v, want %v", got, want)
			break
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d, want 0", q.Len())
	}
}

func TestTaskCancel(t *testing.T) {
	var q Tasks
	ran := false
	task := q.Schedule(10, func(float64) { ran = true })
	if !task.Pending() {
		t.Error("new task should be pending")
	}
	task.Cancel()
	task.Cancel()
	if task.Pending() {
		t.Error("cancelled task should not be pending")
	}
	if q.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", q.Pending())
	}
	q.Run(100)
	if ran {
		t.Error("cancelled task ran")
	}
	if q.Len() != 0 {
		t.Errorf("cancelled task not swept, Len = %d", q.Len())
	}
}

func TestTaskNilCancel(t *testing.T) {
	var task *Task
	task.Cancel()
	if task.Pending() {
		t.Error("nil task reported pending")
	}
}

func TestTaskReceivesFrameTime(t *testing.T) {
	var q Tasks
	var at float64
	task := q.Schedule(1000, func(now float64) { at = now })
	q.Run(1016)
	if at != 1016 {
		t.Errorf("task ran with now = %v, want 1016", at)
	}
	if task.Pending() {
		t.Error("finished task still pending")
	}
	if task.Due() != 1000 {
		t.Errorf("Due = %v, want 1000", task.Due())
	}
}

func TestTasksCancelAll(t *testing.T) {
	var q Tasks
	ran := 0
	tasks := []*Task{
		q.Schedule(1, func(float64) { ran++ }),
		q.Schedule(2, func(float64) { ran++ }),
	}
	q.CancelAll()
	q.Run(10)
	if ran != 0 {
		t.Errorf("ran %d tasks after CancelAll", ran)
	}
	for i, task := range tasks {
		if task.Pending() {
			t.Errorf("task %d still pending", i)
		}
	}
}
