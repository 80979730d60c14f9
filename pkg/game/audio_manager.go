package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000

// SoundID 音效标识
type SoundID string

const (
	// SoundClick 按钮点击
	SoundClick SoundID = "click"
	// SoundStop 转轮停下（未命中）
	SoundStop SoundID = "stop"
	// SoundWin 命中「一」
	SoundWin SoundID = "win"
	// SoundPromote 难度升级预约
	SoundPromote SoundID = "promote"
)

// toneSpec 合成音效参数：依次播放的音高（Hz）和每个音的时长（秒）
type toneSpec struct {
	frequencies  []float64
	noteDuration float64
}

// soundTable 所有音效都在运行时合成，不依赖音频文件
var soundTable = map[SoundID]toneSpec{
	SoundClick:   {frequencies: []float64{880}, noteDuration: 0.04},
	SoundStop:    {frequencies: []float64{392, 330}, noteDuration: 0.09},
	SoundWin:     {frequencies: []float64{523.25, 659.25, 783.99}, noteDuration: 0.10},
	SoundPromote: {frequencies: []float64{659.25, 783.99, 1046.5}, noteDuration: 0.08},
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 音效按需合成并缓存播放器
type AudioManager struct {
	context         *audio.Context            // 音频上下文，可为 nil（静音模式）
	settingsManager *SettingsManager          // 设置管理器（用于读取音量设置，可为 nil）
	players         map[SoundID]*audio.Player // 播放器缓存
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 音频上下文（全局唯一，可为 nil 表示无音频设备）
//   - sm: SettingsManager 实例（可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		players:         make(map[SoundID]*audio.Player),
	}
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放（音效关闭或无音频上下文时返回 false）
func (am *AudioManager) PlaySound(id SoundID) bool {
	if am == nil || am.context == nil {
		return false
	}

	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getPlayer(id)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", id, err)
	}
	player.Play()
	return true
}

// getPlayer 获取或合成音效播放器
func (am *AudioManager) getPlayer(id SoundID) *audio.Player {
	if player, exists := am.players[id]; exists {
		return player
	}

	spec, ok := soundTable[id]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", id)
		return nil
	}

	pcm := SynthesizeTone(AudioSampleRate, spec.frequencies, spec.noteDuration)
	player := am.context.NewPlayerFromBytes(pcm)
	am.players[id] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}

// SynthesizeTone 合成一段正弦音序列
// 输出格式为 Ebitengine 播放器要求的 16 位有符号小端立体声 PCM
// 每个音符带短促的线性淡入淡出，避免爆音
func SynthesizeTone(sampleRate int, frequencies []float64, noteDuration float64) []byte {
	samplesPerNote := int(float64(sampleRate) * noteDuration)
	if samplesPerNote <= 0 || len(frequencies) == 0 {
		return nil
	}

	fade := samplesPerNote / 10
	const amplitude = 0.3 * math.MaxInt16

	buf := make([]byte, 0, samplesPerNote*len(frequencies)*4)
	frame := make([]byte, 4)

	for _, freq := range frequencies {
		for i := 0; i < samplesPerNote; i++ {
			envelope := 1.0
			if fade > 0 {
				if i < fade {
					envelope = float64(i) / float64(fade)
				} else if i >= samplesPerNote-fade {
					envelope = float64(samplesPerNote-1-i) / float64(fade)
				}
			}

			v := int16(amplitude * envelope * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
			binary.LittleEndian.PutUint16(frame[0:2], uint16(v))
			binary.LittleEndian.PutUint16(frame[2:4], uint16(v))
			buf = append(buf, frame...)
		}
	}

	return buf
}
