package tiny64cmd

const helpText = `tiny64 - time-ordered compact unique IDs

USAGE:
    tiny64             Generate a single tiny64 ID
    tiny64 -h|--help   Show this help message

DESCRIPTION:
    tiny64 prints a 64-bit identifier for systems that need time-sortable
    unique IDs without a coordination service. Generation is cheap enough to
    call from shell scripts and lightweight services.

FEATURES:
    - Short: 11 characters drawn from a URL-safe base64 alphabet
    - Time-sortable: IDs compare chronologically as plain strings
    - Low collision rate: timestamp + per-millisecond sequence + randomness
    - Uncoordinated: separate processes rely on the random field only

FORMAT:
    [ 42 bits: timestamp (ms since Unix epoch) ]
    [ 12 bits: sequence number                ]
    [ 10 bits: randomness                     ]

    Alphabet (ascending ASCII):
    -0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz

NOTES:
    More than 4096 IDs in one millisecond wait for the next millisecond.
    A system clock that moves backwards is not corrected; IDs issued after
    the jump sort before those issued earlier.

EXAMPLES:
    $ tiny64
    NjEtLV--4-R

    $ for i in 1 2 3; do tiny64; done
`
