package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/puppet/control"
	"github.com/plus3/puppet/ecs"
)

// SpawnControllerWindow adds an overlay window showing the live state of the
// control loop: key state, camera pose, locomotion state, animation index,
// and event-queue pressure.
func SpawnControllerWindow(c *control.Controller) {
	c.Storage.Spawn(ImguiItem{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(300, 280), imgui.CondOnce)

			if !imgui.BeginV("Controller", nil, 0) {
				imgui.End()
				return
			}

			keys := c.KeyState()
			imgui.Text(fmt.Sprintf("Move: F=%v B=%v L=%v R=%v",
				keys.Forward, keys.Back, keys.Left, keys.Right))
			imgui.Text(fmt.Sprintf("Cursor grab: %v", keys.CursorGrab))

			imgui.Separator()

			camera := c.Camera()
			imgui.Text(fmt.Sprintf("Position: %.2f %.2f %.2f",
				camera.Position.X(), camera.Position.Y(), camera.Position.Z()))
			imgui.Text(fmt.Sprintf("Rotation: %.3f %.3f %.3f %.3f",
				camera.Rotation.W, camera.Rotation.X(), camera.Rotation.Y(), camera.Rotation.Z()))

			imgui.Separator()

			player := c.PlayerState()
			anim := c.AnimationState()
			if player != nil && anim != nil {
				imgui.Text(fmt.Sprintf("State: %s (index %d)", player.State, anim.Index))
				imgui.Text(fmt.Sprintf("Clip time: %.2f", anim.Time))
			}

			imgui.Separator()

			var queue *control.EventQueue
			if c.Storage.ReadSingleton(&queue) {
				imgui.Text(fmt.Sprintf("Queued events: %d", queue.Len()))
				imgui.Text(fmt.Sprintf("Dropped events: %d", queue.Dropped()))
			}

			imgui.End()
		},
	})
}

// SpawnSchedulerWindow adds an overlay window with per-system execution
// statistics.
func SpawnSchedulerWindow(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	storage.Spawn(ImguiItem{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(10, 300), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(300, 200), imgui.CondOnce)

			if !imgui.BeginV("Systems", nil, 0) {
				imgui.End()
				return
			}

			stats := scheduler.GetStats()
			imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
			imgui.Separator()

			for _, system := range stats.Systems {
				imgui.Text(fmt.Sprintf("%s: avg %.3f ms (last %.3f)",
					system.Name,
					float64(system.AvgDuration.Microseconds())/1000.0,
					float64(system.LastDuration.Microseconds())/1000.0))
			}

			imgui.End()
		},
	})
}
