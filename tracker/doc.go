/*
Package tracker contains the editing state machine of the chiptrack music
editor.

The Model struct holds the editing session over a chiptrack.Music owned by the
host: the cursors of the tracker and piano views, the selection, the viewport
scroll and the session state like the last entered octave and sound effect.
The host calls Model.Tick once per frame with the polled Input; everything the
user does with the keyboard is dispatched from there.

The host does not modify the Model data directly, rather, there are types
Action, Bool and Int which can be used to manipulate the model data in a
controlled way. For example, model.Play().Frame() returns an Action to play
the current frame, which can be executed with model.Play().Frame().Do().

The various Actions and other data manipulation methods are grouped based on
their functionalities. model.Tracker() groups the cursor and selection of the
tracker view, model.Piano() the piano view, model.RowEditor() the typed edits
of a single row and model.History() the undo and redo actions.

Every committed mutation of the music is followed by exactly one
History.Checkpoint. Edits that are rejected, e.g. because no pattern is
assigned under the cursor, leave both the music and the history untouched.

The playback is delegated to an Engine. Sequencer is an Engine without audio
that advances the play position every tick and triggers the notes on a
Synth. SfxModel is a separate editor of the sound effect bank, with its own
history.
*/
package tracker
