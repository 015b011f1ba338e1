// Package loop runs a Target Blaster session: the per-frame simulation, the
// session phase machine and the wiring to audio, ads and score storage.
//
// A Game is not safe for concurrent use. Every method must be called from the
// goroutine that drives the frame loop.
package loop

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween"

	"github.com/tomz197/target-blaster/internal/ads"
	"github.com/tomz197/target-blaster/internal/audio"
	"github.com/tomz197/target-blaster/internal/loop/config"
	"github.com/tomz197/target-blaster/internal/object"
	"github.com/tomz197/target-blaster/internal/pool"
	"github.com/tomz197/target-blaster/internal/powerup"
	"github.com/tomz197/target-blaster/internal/score"
	"github.com/tomz197/target-blaster/internal/store"
)

// Audio plays sound cues.
type Audio interface {
	Play(c audio.Cue)
}

// Ads shows advertisements. ShowRewardedVideo may call onReward from any
// goroutine, at most once. SkipRewardedVideo ends the running video early
// and pays its reward when the network allows it; CancelRewardedVideo ends it
// without paying.
type Ads interface {
	ShowInterstitial()
	ShowRewardedVideo(onReward func())
	SkipRewardedVideo() bool
	CancelRewardedVideo()
}

// HighScores persists the best score.
type HighScores interface {
	Load() (int, error)
	Save(score int) error
}

// Options configures a Game. Nil collaborators are replaced by no-ops.
type Options struct {
	Audio      Audio
	Ads        Ads
	HighScores HighScores
	Logger     *log.Logger
	// Rand drives every random draw. Seed it for reproducible sessions.
	Rand *rand.Rand

	// Canvas size in logical pixels, defaults to config.LogicalWidth x LogicalHeight.
	Width, Height float64
	// Score display position that score particles fly to.
	AnchorX, AnchorY float64

	Difficulty config.Difficulty
}

type shot struct{ x, y float64 }

// Game owns every entity collection and the session state.
type Game struct {
	audio  Audio
	ads    Ads
	scores HighScores
	logger *log.Logger
	rng    *rand.Rand

	width, height    float64
	anchorX, anchorY float64

	difficulty config.Difficulty
	phase      Phase

	board    *score.Board
	powerups *powerup.States

	targets     []*object.Target
	items       []*object.Powerup
	particles   []*object.Particle
	projectiles []*object.Projectile

	targetPool     *pool.Pool[object.Target]
	particlePool   *pool.Pool[object.Particle]
	projectilePool *pool.Pool[object.Projectile]

	arrivals object.ArrivalQueue
	shots    []shot

	elapsed      time.Duration
	bonus        int // seconds granted by rewards
	spawnTimer   time.Duration
	powerupTimer time.Duration

	shakeLeft      time.Duration
	shakeX, shakeY float64

	popup      int
	popupAlpha float64
	popupTween *gween.Tween

	highScore    int
	newHighScore bool

	// Rewards carry the generation they were requested in; a reward from an
	// earlier generation is stale.
	rewards       chan uint64
	rewardGen     uint64
	rewardPending bool
}

// New builds a Game in the loading phase and reads the stored high score.
func New(opts Options) *Game {
	g := &Game{
		audio:      opts.Audio,
		ads:        opts.Ads,
		scores:     opts.HighScores,
		logger:     opts.Logger,
		rng:        opts.Rand,
		width:      opts.Width,
		height:     opts.Height,
		anchorX:    opts.AnchorX,
		anchorY:    opts.AnchorY,
		difficulty: opts.Difficulty,
		phase:      PhaseLoading,
		board:      score.NewBoard(),
		powerups:   powerup.NewStates(),
		rewards:    make(chan uint64, 1),
	}
	if g.audio == nil {
		g.audio = audio.Nop{}
	}
	if g.ads == nil {
		g.ads = ads.Nop{}
	}
	if g.scores == nil {
		g.scores = &store.Memory{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	if g.width <= 0 || g.height <= 0 {
		g.width, g.height = config.LogicalWidth, config.LogicalHeight
	}
	if g.anchorX == 0 && g.anchorY == 0 {
		g.anchorX, g.anchorY = config.ScoreAnchorX, config.ScoreAnchorY
	}
	if !g.difficulty.Valid() {
		g.difficulty = config.Medium
	}

	g.targetPool = pool.New(config.TargetPoolSize, nil, (*object.Target).Reset)
	g.particlePool = pool.New(config.ParticlePoolSize, nil, (*object.Particle).Reset)
	g.projectilePool = pool.New(config.ProjectilePoolSize, nil, (*object.Projectile).Reset)
	g.targetPool.Prefill(config.TargetPoolSize)
	g.particlePool.Prefill(config.ParticlePoolSize)
	g.projectilePool.Prefill(config.ProjectilePoolSize)

	if hs, err := g.scores.Load(); err != nil {
		g.logger.Warn("could not load high score", "err", err)
	} else {
		g.highScore = hs
	}
	return g
}

func (g *Game) Phase() Phase                  { return g.phase }
func (g *Game) Difficulty() config.Difficulty { return g.difficulty }
func (g *Game) HighScore() int                { return g.highScore }

// Size returns the canvas size in logical pixels.
func (g *Game) Size() (w, h float64) { return g.width, g.height }

// Anchor is where score particles fly to; UIs draw the score readout there.
func (g *Game) Anchor() (x, y float64) { return g.anchorX, g.anchorY }

// Ready leaves the loading phase for the menu.
func (g *Game) Ready() bool {
	if g.phase != PhaseLoading {
		return false
	}
	g.setPhase(PhaseMenu)
	return true
}

// SetDifficulty selects the level for the next Start. Only allowed on the
// menu and game-over screens.
func (g *Game) SetDifficulty(d config.Difficulty) bool {
	if !d.Valid() || (g.phase != PhaseMenu && g.phase != PhaseGameOver) {
		return false
	}
	g.difficulty = d
	g.logger.Debug("difficulty selected", "difficulty", d)
	return true
}

// Start begins a fresh session from the menu, pause or game-over screen.
func (g *Game) Start() bool {
	switch g.phase {
	case PhaseMenu, PhasePaused, PhaseGameOver:
	default:
		return false
	}
	g.reset()
	g.setPhase(PhasePlaying)
	g.audio.Play(audio.Start)
	return true
}

func (g *Game) Pause() bool {
	if g.phase != PhasePlaying {
		return false
	}
	g.setPhase(PhasePaused)
	return true
}

func (g *Game) Resume() bool {
	if g.phase != PhasePaused {
		return false
	}
	g.setPhase(PhasePlaying)
	return true
}

// TogglePause pauses a running session or resumes a paused one.
func (g *Game) TogglePause() bool {
	if g.phase == PhasePaused {
		return g.Resume()
	}
	return g.Pause()
}

// ToMenu abandons the session and returns to the title screen.
func (g *Game) ToMenu() bool {
	switch g.phase {
	case PhasePlaying, PhasePaused, PhaseGameOver:
	default:
		return false
	}
	g.shots = g.shots[:0]
	g.dropReward()
	g.setPhase(PhaseMenu)
	return true
}

// RequestReward asks for a rewarded video on the game-over screen. A
// completed video adds config.RewardBonus, capped at the time limit, and
// resumes play on a later Frame.
func (g *Game) RequestReward() bool {
	if g.phase != PhaseGameOver || g.rewardPending {
		return false
	}
	g.rewardPending = true
	gen := g.rewardGen
	g.ads.ShowRewardedVideo(func() {
		select {
		case g.rewards <- gen:
		default:
		}
	})
	return true
}

// RewardPending reports whether a requested video has not paid out yet.
func (g *Game) RewardPending() bool { return g.rewardPending }

// SkipReward skips the rewarded video that is playing, if the ad network
// allows it yet. The reward is applied on the next Frame.
func (g *Game) SkipReward() bool {
	if g.phase != PhaseGameOver || !g.rewardPending {
		return false
	}
	return g.ads.SkipRewardedVideo()
}

// Shoot queues a pointer-down at (x, y). It is resolved on the next Tick.
func (g *Game) Shoot(x, y float64) bool {
	if g.phase != PhasePlaying {
		return false
	}
	g.shots = append(g.shots, shot{x, y})
	return true
}

// Frame delivers pending rewards and then ticks. Frontends call it once per
// rendered frame in every phase.
func (g *Game) Frame(dt time.Duration) {
	select {
	case gen := <-g.rewards:
		if gen == g.rewardGen {
			g.grantReward()
		}
	default:
	}
	g.Tick(dt)
}

// Tick advances the simulation by dt. It does nothing unless playing.
func (g *Game) Tick(dt time.Duration) {
	if g.phase != PhasePlaying || dt <= 0 {
		return
	}
	g.elapsed += dt
	if g.TimeLeft() <= 0 {
		g.endSession()
		return
	}

	g.spawnTargets(dt)
	g.spawnPowerups(dt)
	for _, k := range g.powerups.Tick(dt) {
		g.logger.Debug("powerup expired", "kind", k)
	}

	g.updateTargets(dt)
	g.updateItems(dt)
	g.updateParticles(dt)
	g.updateProjectiles(dt)

	g.resolveShots()
	g.arrivals.Drain(g.onArrival)

	g.board.Decay(dt)
	g.updateEffects(dt)
}

// TimeLeft is the whole seconds remaining in the session.
func (g *Game) TimeLeft() int {
	limit := int(g.difficulty.Profile().TimeLimit / time.Second)
	return max(0, limit+g.bonus-int(g.elapsed/time.Second))
}

// RapidFire reports whether held pointers should auto-repeat.
func (g *Game) RapidFire() bool {
	return g.powerups.Active(powerup.RapidFire)
}

// Snapshot copies the state a UI needs.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:         g.phase,
		Difficulty:    g.difficulty,
		Score:         g.board.Score,
		Pending:       g.board.Pending,
		HighScore:     g.highScore,
		NewHighScore:  g.newHighScore,
		TimeLeft:      g.TimeLeft(),
		Accuracy:      g.board.Accuracy(),
		Multiplier:    g.board.Multiplier,
		Shots:         g.board.Shots,
		Hits:          g.board.Hits,
		Streak:        g.board.Streak,
		ShakeX:        g.shakeX,
		ShakeY:        g.shakeY,
		Popup:         g.popup,
		PopupAlpha:    g.popupAlpha,
		Targets:       len(g.targets),
		Items:         len(g.items),
		Particles:     len(g.particles),
		Projectiles:   len(g.projectiles),
		RewardPending: g.rewardPending,
	}
	for i, k := range powerup.Kinds {
		st := g.powerups.Get(k)
		s.Powerups[i] = PowerupTimer{
			Kind:      k,
			Active:    st.Active,
			Remaining: st.Remaining,
			Fraction:  g.powerups.Fraction(k),
		}
	}
	return s
}

func (g *Game) setPhase(p Phase) {
	if p == g.phase {
		return
	}
	g.logger.Debug("phase change", "from", g.phase, "to", p)
	g.phase = p
	if p == PhaseMenu || p == PhaseGameOver {
		g.ads.ShowInterstitial()
	}
}

// reset clears the session and hands every pooled entity back.
func (g *Game) reset() {
	g.board.Reset()
	g.powerups.Reset()

	for _, t := range g.targets {
		g.targetPool.Release(t)
	}
	for _, p := range g.particles {
		g.particlePool.Release(p)
	}
	for _, p := range g.projectiles {
		g.projectilePool.Release(p)
	}
	clear(g.targets)
	clear(g.particles)
	clear(g.projectiles)
	clear(g.items)
	g.targets = g.targets[:0]
	g.particles = g.particles[:0]
	g.projectiles = g.projectiles[:0]
	g.items = g.items[:0]

	g.arrivals.Clear()
	g.shots = g.shots[:0]

	g.elapsed = 0
	g.bonus = 0
	g.spawnTimer = 0
	g.powerupTimer = 0

	g.shakeLeft = 0
	g.shakeX, g.shakeY = 0, 0
	g.popup = 0
	g.popupAlpha = 0
	g.popupTween = nil

	g.newHighScore = false
	g.dropReward()
}

// dropReward cancels a requested video and invalidates any reward it may
// still deliver.
func (g *Game) dropReward() {
	if g.rewardPending {
		g.ads.CancelRewardedVideo()
	}
	g.rewardPending = false
	g.rewardGen++
	select {
	case <-g.rewards:
	default:
	}
}

func (g *Game) endSession() {
	g.shots = g.shots[:0]
	g.newHighScore = false
	if g.board.Score > g.highScore {
		g.highScore = g.board.Score
		g.newHighScore = true
		if err := g.scores.Save(g.highScore); err != nil {
			g.logger.Warn("could not save high score", "score", g.highScore, "err", err)
		}
		g.audio.Play(audio.HighScore)
	}
	g.logger.Info("session over",
		"score", g.board.Score,
		"accuracy", g.board.Accuracy(),
		"difficulty", g.difficulty,
		"high", g.newHighScore,
	)
	g.setPhase(PhaseGameOver)
	g.audio.Play(audio.GameOver)
}

func (g *Game) grantReward() {
	g.rewardPending = false
	if g.phase != PhaseGameOver {
		return
	}
	limit := int(g.difficulty.Profile().TimeLimit / time.Second)
	left := min(limit, g.TimeLeft()+int(config.RewardBonus/time.Second))
	g.bonus = left - limit + int(g.elapsed/time.Second)
	g.logger.Debug("reward granted", "timeLeft", g.TimeLeft())
	g.setPhase(PhasePlaying)
}
