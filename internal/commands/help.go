package commands

const normalHelp = `Available Commands:

help, h               Show this help message
load, l <path|url>    Load an mp3 file
volume, vol <value>   Set the volume slider
reverse <seek|volume> Flip a slider's direction
theme [name]          List or switch color themes
quit, q, exit         Exit application

Commands can be used with or without a colon prefix (:)
Typing a path (/, ./, ~/) or URL loads it directly.`

const trackHelp = `Track Mode Commands:

info, i               Show track information
play, p               Play current track
pause                 Pause playback
stop                  Stop playback and rewind
seek <[+|-]s|mm:ss>   Jump to a position
volume, vol <value>   Set the volume slider
reverse <seek|volume> Flip a slider's direction
theme [name]          List or switch color themes
unload                Unload the track
help, h               Show this help message

Sliders: click or drag with the mouse, or focus one
with ctrl+n and use the arrow keys.`
