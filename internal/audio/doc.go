// Package audio provides chime playback through the system speaker.
// It uses the beep library to play WAV, OGG, and MP3 audio files and to
// synthesize the fallback tone used when no sound file is installed.
package audio
