package sqlinline

const QListCauses = `--sql 374668cb-3b19-473e-94ff-c4cd911ed73c
select id, title, description, image_url
from causes
order by created_at, id;
`

const QInsertCause = `--sql d18a6df4-c708-40de-b4ab-465a5db4f047
insert into causes(id, title, description, image_url)
values ($1::text, $2::text, $3::text, $4::text);
`

const QGetCause = `--sql c169ffb8-b3d2-4303-9056-dce23da12bf3
select id, title, description, image_url
from causes
where id = $1::text;
`

const QReplaceCause = `--sql 4699feac-f01c-49e1-b8b2-acd0bc7a669d
update causes
set title = $2::text, description = $3::text, image_url = $4::text
where id = $1::text;
`

const QDeleteCause = `--sql 357eec38-be2f-4771-a1b0-8b57c195bc0d
delete from causes
where id = $1::text;
`
